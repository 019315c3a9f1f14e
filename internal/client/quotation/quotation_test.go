package quotation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avendano-dev/backoffice/internal/common"
)

func validQuotation() *Quotation {
	q := New()
	q.ClientName = "Taller Flores"
	q.ClientAddress = "Av. Principal 123"
	q.ClientEmail = "taller@x.com"
	q.AddItem(2, "Radiador aluminio", 450)
	q.AddItem(1, "Mano de obra", 100)
	return q
}

func TestNew_Defaults(t *testing.T) {
	q := New()
	require.Equal(t, "Santa Cruz", q.ClientCity)
	require.Equal(t, 15, q.ValidityDays)
	require.False(t, q.Date.IsZero())
	require.Empty(t, q.Items)
}

func TestTotals(t *testing.T) {
	q := validQuotation()

	require.InDelta(t, 900.0, q.Items[0].Total(), 1e-9)
	require.InDelta(t, 1000.0, q.Subtotal(), 1e-9)
	require.InDelta(t, q.Subtotal(), q.Total(), 1e-9)
}

func TestRemoveItem(t *testing.T) {
	q := validQuotation()
	q.RemoveItem(0)
	require.Len(t, q.Items, 1)
	require.InDelta(t, 100.0, q.Subtotal(), 1e-9)

	// out of range is a no-op
	q.RemoveItem(5)
	q.RemoveItem(-1)
	require.Len(t, q.Items, 1)
}

func TestValidate(t *testing.T) {
	require.NoError(t, validQuotation().Validate())

	noItems := validQuotation()
	noItems.Items = nil
	require.ErrorIs(t, noItems.Validate(), common.ErrValidation)

	badQty := validQuotation()
	badQty.Items[0].Quantity = 0
	require.ErrorIs(t, badQty.Validate(), common.ErrValidation)

	negativePrice := validQuotation()
	negativePrice.Items[0].UnitPrice = -10
	require.ErrorIs(t, negativePrice.Validate(), common.ErrValidation)

	noClient := validQuotation()
	noClient.ClientName = ""
	require.ErrorIs(t, noClient.Validate(), common.ErrValidation)

	badValidity := validQuotation()
	badValidity.ValidityDays = 0
	require.ErrorIs(t, badValidity.Validate(), common.ErrValidation)
}
