package labservice_test

import (
	"strings"
	"testing"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"
	"pipetgo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount float64) *kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return &m
}

func TestPricingMode(t *testing.T) {
	t.Run("from_string_round_trip", func(t *testing.T) {
		for _, raw := range []string{"FIXED", "QUOTE_REQUIRED", "HYBRID"} {
			mode, err := labservice.PricingModeFromString(raw)
			require.NoError(t, err)
			require.NoError(t, mode.Validate())
			assert.Equal(t, raw, mode.String())
		}
	})

	t.Run("rejects_unknown_name", func(t *testing.T) {
		_, err := labservice.PricingModeFromString("NEGOTIABLE")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires_catalog_price", func(t *testing.T) {
		assert.True(t, labservice.PricingModeFixed.RequiresCatalogPrice())
		assert.True(t, labservice.PricingModeHybrid.RequiresCatalogPrice())
		assert.False(t, labservice.PricingModeQuoteRequired.RequiresCatalogPrice())
	})
}

func TestNewLabService(t *testing.T) {
	t.Run("fixed_service_with_price", func(t *testing.T) {
		id := kernel.NewUUID()
		labID := kernel.NewUUID()

		service, err := labservice.NewLabService(
			id, labID, "Tensile strength test", "Physical Testing",
			labservice.PricingModeFixed, money(t, 1200),
		)

		require.NoError(t, err)
		require.NoError(t, service.Validate())
		assert.True(t, service.ID().IsEqual(id))
		assert.True(t, service.LabID().IsEqual(labID))
		assert.True(t, service.IsActive())
		assert.Equal(t, "per_sample", service.UnitType())
		require.NotNil(t, service.PricePerUnit())
		assert.Equal(t, "1200", service.PricePerUnit().String())
	})

	t.Run("quote_required_service_without_price", func(t *testing.T) {
		service, err := labservice.NewLabService(
			kernel.NewUUID(), kernel.NewUUID(), "Failure analysis", "Other",
			labservice.PricingModeQuoteRequired, nil,
		)

		require.NoError(t, err)
		assert.Nil(t, service.PricePerUnit())
	})

	t.Run("fixed_service_without_price_is_rejected", func(t *testing.T) {
		_, err := labservice.NewLabService(
			kernel.NewUUID(), kernel.NewUUID(), "Tensile strength test", "Physical Testing",
			labservice.PricingModeFixed, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("quote_required_service_with_price_is_rejected", func(t *testing.T) {
		_, err := labservice.NewLabService(
			kernel.NewUUID(), kernel.NewUUID(), "Failure analysis", "Other",
			labservice.PricingModeQuoteRequired, money(t, 100),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("name_too_short", func(t *testing.T) {
		_, err := labservice.NewLabService(
			kernel.NewUUID(), kernel.NewUUID(), "ab", "Other",
			labservice.PricingModeQuoteRequired, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("category_is_required", func(t *testing.T) {
		_, err := labservice.NewLabService(
			kernel.NewUUID(), kernel.NewUUID(), "Failure analysis", "  ",
			labservice.PricingModeQuoteRequired, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var service labservice.LabService
		require.ErrorIs(t, service.Validate(), labservice.ErrLabServiceIsNotConstructed)
	})
}

func TestLabService_Mutations(t *testing.T) {
	newHybrid := func(t *testing.T) *labservice.LabService {
		t.Helper()
		service, err := labservice.NewLabService(
			kernel.NewUUID(), kernel.NewUUID(), "Salt spray corrosion test", "Environmental Testing",
			labservice.PricingModeHybrid, money(t, 1500),
		)
		require.NoError(t, err)
		return service
	}

	t.Run("reprice_to_quote_required_clears_price", func(t *testing.T) {
		service := newHybrid(t)

		require.NoError(t, service.Reprice(labservice.PricingModeQuoteRequired, nil))

		assert.Equal(t, labservice.PricingModeQuoteRequired, service.PricingMode())
		assert.Nil(t, service.PricePerUnit())
	})

	t.Run("reprice_keeps_invariant", func(t *testing.T) {
		service := newHybrid(t)

		err := service.Reprice(labservice.PricingModeFixed, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, labservice.PricingModeHybrid, service.PricingMode())
	})

	t.Run("turnaround_days_bounds", func(t *testing.T) {
		service := newHybrid(t)

		require.NoError(t, service.SetTurnaroundDays(5))
		require.ErrorIs(t, service.SetTurnaroundDays(0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, service.SetTurnaroundDays(366), errs.ErrValueIsOutOfRange)
	})

	t.Run("description_too_long", func(t *testing.T) {
		service := newHybrid(t)

		err := service.SetDescription(strings.Repeat("x", 1001))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("deactivate_and_activate", func(t *testing.T) {
		service := newHybrid(t)

		service.Deactivate()
		assert.False(t, service.IsActive())

		service.Activate()
		assert.True(t, service.IsActive())
	})
}

func TestRestoreLabService(t *testing.T) {
	desc := "ASTM B117 salt fog exposure"
	days := 12
	reqs := "Minimum 3 coupons per batch"

	service, err := labservice.RestoreLabService(
		kernel.NewUUID(), kernel.NewUUID(), "Salt spray corrosion test", &desc,
		"Environmental Testing", labservice.PricingModeHybrid, money(t, 1500),
		"per_batch", &days, &reqs, false,
	)

	require.NoError(t, err)
	assert.Equal(t, "per_batch", service.UnitType())
	assert.Equal(t, &days, service.TurnaroundDays())
	assert.False(t, service.IsActive())
	require.NotNil(t, service.Description())
	assert.Equal(t, desc, *service.Description())
}
