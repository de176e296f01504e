package queries_test

import (
	"testing"

	"pipetgo/internal/core/application/usecases/queries"
	"pipetgo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	actor := queryClientActor(t)
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(actor, orderID)
	require.NoError(t, err)

	assert.Equal(t, actor, query.Actor())
	assert.Equal(t, orderID, query.OrderID())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_InvalidActor(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.Actor{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
}

func TestNewGetOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(queryClientActor(t), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQuery_NotConstructed(t *testing.T) {
	var query queries.GetOrderQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}
