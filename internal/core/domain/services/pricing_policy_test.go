package services_test

import (
	"testing"
	"time"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"
	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, mode labservice.PricingMode, price *float64) *labservice.LabService {
	t.Helper()

	var money *kernel.Money
	if price != nil {
		m, err := kernel.NewMoneyFromFloat(*price)
		require.NoError(t, err)
		money = &m
	}

	svc, err := labservice.NewLabService(
		kernel.NewUUID(), kernel.NewUUID(),
		"Tensile Strength Testing", "Mechanical Testing",
		mode, money,
	)
	require.NoError(t, err)
	return svc
}

func floatPtr(v float64) *float64 { return &v }

func TestPricingPolicy_Evaluate(t *testing.T) {
	policy := services.NewPricingPolicy()
	now := time.Now()

	t.Run("fixed_books_instantly", func(t *testing.T) {
		svc := newService(t, labservice.PricingModeFixed, floatPtr(1200))

		status, price, quotedAt, err := policy.Evaluate(svc, false, now)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, status)
		require.NotNil(t, price)
		assert.True(t, price.Decimal().Equal(decimal.NewFromInt(1200)))
		require.NotNil(t, quotedAt)
		assert.Equal(t, now, *quotedAt)
	})

	t.Run("fixed_ignores_custom_quote_request", func(t *testing.T) {
		svc := newService(t, labservice.PricingModeFixed, floatPtr(1200))

		status, price, quotedAt, err := policy.Evaluate(svc, true, now)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, status)
		assert.NotNil(t, price)
		assert.NotNil(t, quotedAt)
	})

	t.Run("quote_required_starts_quote_flow", func(t *testing.T) {
		svc := newService(t, labservice.PricingModeQuoteRequired, nil)

		status, price, quotedAt, err := policy.Evaluate(svc, false, now)

		require.NoError(t, err)
		assert.Equal(t, order.QuoteRequested, status)
		assert.Nil(t, price)
		assert.Nil(t, quotedAt)
	})

	t.Run("hybrid_instant_booking", func(t *testing.T) {
		svc := newService(t, labservice.PricingModeHybrid, floatPtr(850))

		status, price, quotedAt, err := policy.Evaluate(svc, false, now)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, status)
		require.NotNil(t, price)
		assert.True(t, price.Decimal().Equal(decimal.NewFromInt(850)))
		assert.NotNil(t, quotedAt)
	})

	t.Run("hybrid_custom_quote", func(t *testing.T) {
		svc := newService(t, labservice.PricingModeHybrid, floatPtr(850))

		status, price, quotedAt, err := policy.Evaluate(svc, true, now)

		require.NoError(t, err)
		assert.Equal(t, order.QuoteRequested, status)
		assert.Nil(t, price)
		assert.Nil(t, quotedAt)
	})

	t.Run("not_constructed_service", func(t *testing.T) {
		var svc labservice.LabService

		_, _, _, err := policy.Evaluate(&svc, false, now)

		require.ErrorIs(t, err, labservice.ErrLabServiceIsNotConstructed)
	})
}
