package commands_test

import (
	"testing"
	"time"

	"pipetgo/internal/core/application/usecases/commands"
	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quotedOrder(t *testing.T, clientID kernel.UUID) *order.Order {
	t.Helper()
	o := fixtureOrder(t, clientID, order.QuoteRequested)
	require.NoError(t, o.ProvideQuote(decimal.NewFromInt(150000), nil, nil, time.Now()))
	return o
}

func TestDecideQuoteCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	actor := clientActor(t)
	aggregate := quotedOrder(t, actor.UserID())
	cmd, err := commands.NewDecideQuoteCommand(actor, aggregate.ID(), true, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForClient", mock.Anything, aggregate.ID(), actor.UserID()).Return(aggregate, nil).Once(),
		repo.On("UpdateIfStatus", mock.Anything, aggregate, order.QuoteProvided).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideQuoteCommandHandler(factory)
	decided, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, decided.Status())
	assert.NotNil(t, decided.QuoteApprovedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDecideQuoteCommandHandler_Handle_Reject(t *testing.T) {
	ctx := t.Context()
	actor := clientActor(t)
	aggregate := quotedOrder(t, actor.UserID())
	cmd, err := commands.NewDecideQuoteCommand(actor, aggregate.ID(), false, "Price exceeds our budget constraints")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForClient", mock.Anything, aggregate.ID(), actor.UserID()).Return(aggregate, nil).Once(),
		repo.On("UpdateIfStatus", mock.Anything, aggregate, order.QuoteProvided).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideQuoteCommandHandler(factory)
	decided, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.QuoteRejected, decided.Status())
	require.NotNil(t, decided.QuoteRejectedReason())
	assert.Equal(t, "Price exceeds our budget constraints", *decided.QuoteRejectedReason())
	uow.AssertExpectations(t)
}

func TestDecideQuoteCommandHandler_Handle_RejectWithoutReason(t *testing.T) {
	ctx := t.Context()
	actor := clientActor(t)
	aggregate := quotedOrder(t, actor.UserID())
	cmd, err := commands.NewDecideQuoteCommand(actor, aggregate.ID(), false, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForClient", mock.Anything, aggregate.ID(), actor.UserID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDecideQuoteCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	repo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestDecideQuoteCommandHandler_Handle_LabAdminForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDecideQuoteCommand(labAdminActor(t), kernel.NewUUID(), true, "")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewDecideQuoteCommandHandler(factory)

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
