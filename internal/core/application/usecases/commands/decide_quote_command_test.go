package commands_test

import (
	"testing"

	"pipetgo/internal/core/application/usecases/commands"
	"pipetgo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecideQuoteCommand_Approval(t *testing.T) {
	actor := clientActor(t)
	orderID := kernel.NewUUID()

	cmd, err := commands.NewDecideQuoteCommand(actor, orderID, true, "")
	require.NoError(t, err)

	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.True(t, cmd.Approved())
	assert.Empty(t, cmd.RejectionReason())
	assert.NoError(t, cmd.Validate())
}

func TestNewDecideQuoteCommand_Rejection(t *testing.T) {
	cmd, err := commands.NewDecideQuoteCommand(
		clientActor(t), kernel.NewUUID(), false, "Price exceeds our budget")
	require.NoError(t, err)

	assert.False(t, cmd.Approved())
	assert.Equal(t, "Price exceeds our budget", cmd.RejectionReason())
}

func TestNewDecideQuoteCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewDecideQuoteCommand(kernel.Actor{}, kernel.NewUUID(), true, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
}

func TestNewDecideQuoteCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewDecideQuoteCommand(clientActor(t), kernel.UUID{}, true, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDecideQuoteCommand_NotConstructed(t *testing.T) {
	var cmd commands.DecideQuoteCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrDecideQuoteCommandIsNotConstructed)
}
