package api

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/slydepay/errors"
	"github.com/kochabx/slydepay/log"
	"github.com/kochabx/slydepay/transport"
)

func TestListPayOptions(t *testing.T) {
	rec := newRecorder(transport.MockResponse{Body: `{
		"success": true,
		"result": [
			{"name": "MTN Mobile Money", "shortName": "mtn", "active": true},
			{"name": "Slydepay", "shortName": "slydepay", "active": false, "reasonNotActive": "maintenance"}
		]
	}`})
	op := NewListPayOptions(WithHandlerFactory(rec.factory), WithLogger(log.Nop()))
	require.NoError(t, op.InjectConfig(newConfig(t)))

	result, err := op.Run(context.Background())
	require.NoError(t, err)
	require.True(t, result.Success())

	var options []PayOption
	require.NoError(t, result.Decode(&options))
	require.Len(t, options, 2)
	assert.Equal(t, "mtn", options[0].ShortName)
	assert.True(t, options[0].Active)
	assert.Equal(t, "maintenance", options[1].ReasonNotActive)

	assert.True(t, strings.HasSuffix(rec.history[0].Request.URL.Path, "/api/merchant/invoice/payoptions"))
	assert.Equal(t, map[string]any{
		"emailOrMobileNumber": "1234567890",
		"merchantKey":         merchantKey,
	}, rec.body(t, 0))
}

func TestCreateInvoice(t *testing.T) {
	rec := newRecorder(transport.MockResponse{Body: `{"success":true,"result":{"payToken":"pt-1","token":"tk-1","orderCode":"ORD-1"}}`})

	items := []OrderItem{
		NewOrderItem("SKU-1", "Rice", decimal.RequireFromString("12.50"), 2),
		NewOrderItem("SKU-2", "Oil", decimal.RequireFromString("20"), 1),
	}
	op := NewCreateInvoice(WithHandlerFactory(rec.factory), WithLogger(log.Nop())).
		WithAmount(decimal.RequireFromString("48.00")).
		WithOrderCode("ORD-1").
		WithDescription("groceries").
		WithOrderItems(items...).
		WithShippingCost(decimal.RequireFromString("3")).
		WithTax(decimal.RequireFromString("0"))
	require.NoError(t, op.InjectConfig(newConfig(t)))

	assert.True(t, decimal.RequireFromString("48").Equal(op.GetAmount()))
	assert.Equal(t, "ORD-1", op.GetOrderCode())
	assert.Equal(t, "groceries", op.GetDescription())
	assert.Equal(t, items, op.GetOrderItems())
	assert.True(t, decimal.RequireFromString("3").Equal(op.GetShippingCost()))
	assert.True(t, op.GetTax().IsZero())

	result, err := op.Run(context.Background())
	require.NoError(t, err)

	var invoice Invoice
	require.NoError(t, result.Decode(&invoice))
	assert.Equal(t, Invoice{PayToken: "pt-1", Token: "tk-1", OrderCode: "ORD-1"}, invoice)

	require.Len(t, rec.history, 1)
	raw := string(rec.history[0].RequestBody)
	assert.Contains(t, raw, `"amount":48`)
	assert.Contains(t, raw, `"unitPrice":12.5`)
	assert.Contains(t, raw, `"subTotal":25`)

	body := rec.body(t, 0)
	assert.Equal(t, float64(48), body["amount"])
	assert.Equal(t, float64(3), body["shippingCost"])
	assert.Equal(t, "ORD-1", body["orderCode"])
	assert.Len(t, body["orderItems"], 2)
}

func TestCreateInvoiceMissing(t *testing.T) {
	rec := newRecorder()
	op := NewCreateInvoice(WithHandlerFactory(rec.factory), WithLogger(log.Nop())).WithDescription("no amount")

	_, err := op.Run(context.Background())
	assert.ErrorIs(t, err, errors.ErrMissingParameter)
	assert.Equal(t, []string{"amount", "orderCode"}, errors.Fields(err))
	assert.True(t, op.GetAmount().IsZero())
	assert.Nil(t, op.GetOrderItems())

	op.WithAmount(decimal.Zero).WithOrderCode("ORD-2")
	assert.Empty(t, op.Missing())
}
