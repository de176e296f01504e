package commands_test

import (
	"testing"

	"pipetgo/internal/core/application/usecases/commands"
	"pipetgo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	actor := clientActor(t)
	serviceID := kernel.NewUUID()
	instructions := "Handle under argon"

	cmd, err := commands.NewCreateOrderCommand(
		actor, serviceID, "Steel coupon, batch 7", &instructions, fixtureDetails(), true)
	require.NoError(t, err)

	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, serviceID, cmd.ServiceID())
	assert.Equal(t, "Steel coupon, batch 7", cmd.SampleDescription())
	require.NotNil(t, cmd.SpecialInstructions())
	assert.Equal(t, instructions, *cmd.SpecialInstructions())
	assert.Equal(t, fixtureDetails(), cmd.ClientDetails())
	assert.True(t, cmd.RequestCustomQuote())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.Actor{}, kernel.NewUUID(), "Steel coupon", nil, fixtureDetails(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidServiceID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		clientActor(t), kernel.UUID{}, "Steel coupon", nil, fixtureDetails(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
