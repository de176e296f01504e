package queries_test

import (
	"testing"

	"pipetgo/internal/core/application/usecases/queries"
	"pipetgo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetLabServicesQuery_Defaults(t *testing.T) {
	query, err := queries.NewGetLabServicesQuery("", 0, 0)
	require.NoError(t, err)

	assert.Empty(t, query.Category())
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 20, query.PageSize())
	assert.Equal(t, 0, query.Offset())
	assert.NoError(t, query.Validate())
}

func TestNewGetLabServicesQuery_CategoryIsTrimmed(t *testing.T) {
	query, err := queries.NewGetLabServicesQuery("  mechanical  ", 1, 20)
	require.NoError(t, err)

	assert.Equal(t, "mechanical", query.Category())
}

func TestNewGetLabServicesQuery_Offset(t *testing.T) {
	query, err := queries.NewGetLabServicesQuery("", 3, 25)
	require.NoError(t, err)

	assert.Equal(t, 50, query.Offset())
}

func TestNewGetLabServicesQuery_PageSizeTooLarge(t *testing.T) {
	_, err := queries.NewGetLabServicesQuery("", 1, 101)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewGetLabServicesQuery_NegativePageSize(t *testing.T) {
	_, err := queries.NewGetLabServicesQuery("", 1, -5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetLabServicesQuery_NotConstructed(t *testing.T) {
	var query queries.GetLabServicesQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrGetLabServicesQueryIsNotConstructed)
}
