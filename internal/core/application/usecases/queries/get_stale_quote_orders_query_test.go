package queries_test

import (
	"testing"
	"time"

	"pipetgo/internal/core/application/usecases/queries"
	"pipetgo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStaleQuoteOrdersQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetStaleQuoteOrdersQuery(48 * time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, query.OlderThan())
	assert.NoError(t, query.Validate())
}

func TestNewGetStaleQuoteOrdersQuery_NonPositiveAge(t *testing.T) {
	for _, olderThan := range []time.Duration{0, -time.Hour} {
		_, err := queries.NewGetStaleQuoteOrdersQuery(olderThan)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestGetStaleQuoteOrdersQuery_NotConstructed(t *testing.T) {
	var query queries.GetStaleQuoteOrdersQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrGetStaleQuoteOrdersQueryIsNotConstructed)
}
