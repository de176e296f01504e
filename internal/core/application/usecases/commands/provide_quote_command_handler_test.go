package commands_test

import (
	"testing"

	"pipetgo/internal/core/application/usecases/commands"
	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"
	"pipetgo/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProvideQuoteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := labAdminActor(t)
	aggregate := fixtureOrder(t, kernel.NewUUID(), order.QuoteRequested)
	notes := "Includes certified report"
	days := 14
	cmd, err := commands.NewProvideQuoteCommand(actor, aggregate.ID(), decimal.NewFromInt(150000), &notes, &days)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForLabOwner", mock.Anything, aggregate.ID(), actor.UserID()).Return(aggregate, nil).Once(),
		repo.On("UpdateIfStatus", mock.Anything, aggregate, order.QuoteRequested).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProvideQuoteCommandHandler(factory)
	quoted, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.QuoteProvided, quoted.Status())
	require.NotNil(t, quoted.QuotedPrice())
	assert.True(t, quoted.QuotedPrice().Decimal().Equal(decimal.NewFromInt(150000)))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProvideQuoteCommandHandler_Handle_ClientForbidden(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProvideQuoteCommand(clientActor(t), kernel.NewUUID(), decimal.NewFromInt(100), nil, nil)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewProvideQuoteCommandHandler(factory)

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestProvideQuoteCommandHandler_Handle_WrongOwnerNotFound(t *testing.T) {
	ctx := t.Context()
	actor := labAdminActor(t)
	orderID := kernel.NewUUID()
	cmd, err := commands.NewProvideQuoteCommand(actor, orderID, decimal.NewFromInt(100), nil, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForLabOwner", mock.Anything, orderID, actor.UserID()).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProvideQuoteCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestProvideQuoteCommandHandler_Handle_ConcurrentWriterConflict(t *testing.T) {
	ctx := t.Context()
	actor := labAdminActor(t)
	aggregate := fixtureOrder(t, kernel.NewUUID(), order.QuoteRequested)
	cmd, err := commands.NewProvideQuoteCommand(actor, aggregate.ID(), decimal.NewFromInt(100), nil, nil)
	require.NoError(t, err)

	// Another writer cancelled the order between this handler's read and write.
	stored := fixtureOrder(t, aggregate.ClientID(), order.QuoteRequested)
	require.NoError(t, stored.Cancel())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForLabOwner", mock.Anything, aggregate.ID(), actor.UserID()).Return(aggregate, nil).Once(),
		repo.On("UpdateIfStatus", mock.Anything, aggregate, order.QuoteRequested).Return(false, nil).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProvideQuoteCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)

	var conflict *errs.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "QUOTE_REQUESTED", conflict.Expected)
	assert.Equal(t, "CANCELLED", conflict.Actual)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestProvideQuoteCommandHandler_Handle_StaleStateConflict(t *testing.T) {
	ctx := t.Context()
	actor := labAdminActor(t)
	aggregate := fixtureOrder(t, kernel.NewUUID(), order.Pending)
	cmd, err := commands.NewProvideQuoteCommand(actor, aggregate.ID(), decimal.NewFromInt(100), nil, nil)
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

	h := commands.NewProvideQuoteCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	repo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
