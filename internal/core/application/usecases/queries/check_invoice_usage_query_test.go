package queries_test

import (
	"testing"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckInvoiceUsageQuery_Valid(t *testing.T) {
	exclude := kernel.NewUUID()
	query, err := queries.NewCheckInvoiceUsageQuery("INV-42", &exclude)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "INV-42", query.InvoiceReference())
	require.NotNil(t, query.ExcludeDeliveryID())
	assert.True(t, exclude.IsEqual(*query.ExcludeDeliveryID()))
}

func TestNewCheckInvoiceUsageQuery_EmptyReference(t *testing.T) {
	_, err := queries.NewCheckInvoiceUsageQuery("", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCheckInvoiceUsageQuery_InvalidExclusion(t *testing.T) {
	_, err := queries.NewCheckInvoiceUsageQuery("INV-42", &kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCheckInvoiceUsageQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.CheckInvoiceUsageQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrCheckInvoiceUsageQueryIsNotConstructed)
}

func TestGetPendingReconciliationsQuery_Valid(t *testing.T) {
	query := queries.NewGetPendingReconciliationsQuery()
	require.NoError(t, query.Validate())
}

func TestGetPendingReconciliationsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingReconciliationsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingReconciliationsQueryIsNotConstructed)
}
