package queries_test

import (
	"testing"

	"pipetgo/internal/core/application/usecases/queries"
	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryClientActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleClient)
	require.NoError(t, err)
	return actor
}

func queryLabAdminActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleLabAdmin)
	require.NoError(t, err)
	return actor
}

func TestNewGetOrdersQuery_ValidInput(t *testing.T) {
	actor := queryClientActor(t)

	query, err := queries.NewGetOrdersQuery(actor, nil)
	require.NoError(t, err)

	assert.Equal(t, actor, query.Actor())
	assert.Nil(t, query.StatusFilter())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrdersQuery_WithStatusFilter(t *testing.T) {
	status := order.QuoteProvided

	query, err := queries.NewGetOrdersQuery(queryLabAdminActor(t), &status)
	require.NoError(t, err)

	require.NotNil(t, query.StatusFilter())
	assert.Equal(t, order.QuoteProvided, *query.StatusFilter())
}

func TestNewGetOrdersQuery_InvalidActor(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(kernel.Actor{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
}

func TestNewGetOrdersQuery_InvalidStatusFilter(t *testing.T) {
	status := order.Unknown

	_, err := queries.NewGetOrdersQuery(queryClientActor(t), &status)
	require.Error(t, err)
}

func TestGetOrdersQuery_NotConstructed(t *testing.T) {
	var query queries.GetOrdersQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
}
