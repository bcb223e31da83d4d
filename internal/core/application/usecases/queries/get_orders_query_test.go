package queries_test

import (
	"testing"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersQuery([]kernel.UUID{kernel.NewUUID(), kernel.NewUUID()})
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Len(t, query.VisibleStoreIDs(), 2)
}

func TestNewGetOrdersQuery_EmptyStoreList(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetOrdersQuery_InvalidStoreID(t *testing.T) {
	_, err := queries.NewGetOrdersQuery([]kernel.UUID{{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
