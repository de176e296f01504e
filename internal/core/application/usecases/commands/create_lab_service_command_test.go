package commands_test

import (
	"testing"

	"pipetgo/internal/core/application/usecases/commands"
	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/labservice"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateLabServiceCommand_ValidInput(t *testing.T) {
	actor := labAdminActor(t)
	labID := kernel.NewUUID()
	description := "ASTM E8 tensile testing"
	price := decimal.NewFromInt(950)
	days := 10
	requirements := "Minimum 3 specimens per batch"

	cmd, err := commands.NewCreateLabServiceCommand(
		actor, labID, "Tensile Test", &description, "mechanical",
		labservice.PricingModeFixed, &price, &days, &requirements)
	require.NoError(t, err)

	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, labID, cmd.LabID())
	assert.Equal(t, "Tensile Test", cmd.Name())
	require.NotNil(t, cmd.Description())
	assert.Equal(t, description, *cmd.Description())
	assert.Equal(t, "mechanical", cmd.Category())
	assert.Equal(t, labservice.PricingModeFixed, cmd.PricingMode())
	require.NotNil(t, cmd.PricePerUnit())
	assert.True(t, price.Equal(*cmd.PricePerUnit()))
	require.NotNil(t, cmd.TurnaroundDays())
	assert.Equal(t, days, *cmd.TurnaroundDays())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateLabServiceCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewCreateLabServiceCommand(
		kernel.Actor{}, kernel.NewUUID(), "Tensile Test", nil, "mechanical",
		labservice.PricingModeQuoteRequired, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
}

func TestNewCreateLabServiceCommand_InvalidLabID(t *testing.T) {
	_, err := commands.NewCreateLabServiceCommand(
		labAdminActor(t), kernel.UUID{}, "Tensile Test", nil, "mechanical",
		labservice.PricingModeQuoteRequired, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateLabServiceCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateLabServiceCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateLabServiceCommandIsNotConstructed)
}
