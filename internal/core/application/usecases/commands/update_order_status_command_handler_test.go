package commands_test

import (
	"testing"

	"pipetgo/internal/core/application/usecases/commands"
	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_RejectsQuoteStatuses(t *testing.T) {
	for _, target := range []order.Status{
		order.QuoteRequested, order.QuoteProvided, order.QuoteRejected, order.Pending, order.Unknown,
	} {
		_, err := commands.NewUpdateOrderStatusCommand(labAdminActor(t), kernel.NewUUID(), target)
		require.Error(t, err, "target %s must be rejected", target)
	}
}

func TestUpdateOrderStatusCommandHandler_Handle_Acknowledge(t *testing.T) {
	ctx := t.Context()
	actor := labAdminActor(t)
	aggregate := fixtureOrder(t, kernel.NewUUID(), order.Pending)
	cmd, err := commands.NewUpdateOrderStatusCommand(actor, aggregate.ID(), order.Acknowledged)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForLabOwner", mock.Anything, aggregate.ID(), actor.UserID()).Return(aggregate, nil).Once(),
		repo.On("UpdateIfStatus", mock.Anything, aggregate, order.Pending).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	moved, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Acknowledged, moved.Status())
	assert.NotNil(t, moved.AcknowledgedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ClientCancelsOwnOrder(t *testing.T) {
	ctx := t.Context()
	actor := clientActor(t)
	aggregate := fixtureOrder(t, actor.UserID(), order.QuoteRequested)
	cmd, err := commands.NewUpdateOrderStatusCommand(actor, aggregate.ID(), order.Cancelled)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForClient", mock.Anything, aggregate.ID(), actor.UserID()).Return(aggregate, nil).Once(),
		repo.On("UpdateIfStatus", mock.Anything, aggregate, order.QuoteRequested).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	moved, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, moved.Status())
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ClientCannotProgressFulfillment(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(clientActor(t), kernel.NewUUID(), order.Acknowledged)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderStatusCommandHandler(factory)

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_CompleteRequiresInProgress(t *testing.T) {
	ctx := t.Context()
	actor := labAdminActor(t)
	aggregate := fixtureOrder(t, kernel.NewUUID(), order.Pending)
	cmd, err := commands.NewUpdateOrderStatusCommand(actor, aggregate.ID(), order.Completed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForLabOwner", mock.Anything, aggregate.ID(), actor.UserID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	repo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
