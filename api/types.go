package api

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PayOption is one payment channel offered to customers, such as a mobile money network.
type PayOption struct {
	Name                   string `json:"name"`
	ShortName              string `json:"shortName"`
	MaximumAmount          string `json:"maximumAmount,omitempty"`
	LogoURL                string `json:"logourl,omitempty"`
	ReasonNotActive        string `json:"reasonNotActive,omitempty"`
	Active                 bool   `json:"active"`
	RequiresCustomerMobile bool   `json:"requiresCustomerMobile,omitempty"`
}

// Invoice is the payload returned by invoice creation.
type Invoice struct {
	PayToken  string `json:"payToken"`
	Token     string `json:"token,omitempty"`
	OrderCode string `json:"orderCode,omitempty"`
}

// OrderItem is one line of an invoice. Amounts are sent as JSON numbers.
type OrderItem struct {
	ItemCode  string          `json:"itemCode"`
	ItemName  string          `json:"itemName"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	SubTotal  decimal.Decimal `json:"subTotal"`
}

// MarshalJSON writes the prices as numbers.
func (i OrderItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ItemCode  string      `json:"itemCode"`
		ItemName  string      `json:"itemName"`
		UnitPrice json.Number `json:"unitPrice"`
		Quantity  int         `json:"quantity"`
		SubTotal  json.Number `json:"subTotal"`
	}{
		ItemCode:  i.ItemCode,
		ItemName:  i.ItemName,
		UnitPrice: json.Number(i.UnitPrice.String()),
		Quantity:  i.Quantity,
		SubTotal:  json.Number(i.SubTotal.String()),
	})
}

// NewOrderItem computes SubTotal from price and quantity.
func NewOrderItem(code, name string, unitPrice decimal.Decimal, quantity int) OrderItem {
	return OrderItem{
		ItemCode:  code,
		ItemName:  name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		SubTotal:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// Payment statuses reported by CheckPaymentStatus.
const (
	StatusNew       = "NEW"
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusDisputed  = "DISPUTED"
	StatusCancelled = "CANCELLED"
)
