package queries_test

import (
	"testing"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveriesQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetDeliveriesQuery([]kernel.UUID{kernel.NewUUID()}, &orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.OrderID())
	assert.True(t, orderID.IsEqual(*query.OrderID()))
}

func TestNewGetDeliveriesQuery_NoOrderFilter(t *testing.T) {
	query, err := queries.NewGetDeliveriesQuery([]kernel.UUID{kernel.NewUUID()}, nil)
	require.NoError(t, err)
	assert.Nil(t, query.OrderID())
}

func TestNewGetDeliveriesQuery_EmptyStoreList(t *testing.T) {
	_, err := queries.NewGetDeliveriesQuery(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetDeliveriesQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetDeliveriesQuery([]kernel.UUID{kernel.NewUUID()}, &kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetDeliveriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDeliveriesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveriesQueryIsNotConstructed)
}
