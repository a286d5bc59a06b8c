package api

import (
	"github.com/shopspring/decimal"

	"github.com/kochabx/slydepay/core/validator"
)

// ListPayOptions lists the pay options enabled for the merchant.
type ListPayOptions struct {
	*Operation
}

// NewListPayOptions creates a ListPayOptions. It has no parameters.
func NewListPayOptions(opts ...Option) *ListPayOptions {
	return &ListPayOptions{newOperation(definition{
		name: "ListPayOptions",
		path: "invoice/payoptions",
	}, opts)}
}

// CreateInvoice creates an invoice and returns its pay token.
type CreateInvoice struct {
	*Operation
}

// NewCreateInvoice creates an empty CreateInvoice.
func NewCreateInvoice(opts ...Option) *CreateInvoice {
	return &CreateInvoice{newOperation(definition{
		name:     "CreateInvoice",
		path:     "invoice/create",
		required: validator.Fields("amount", "orderCode"),
	}, opts)}
}

// WithAmount sets the total amount charged.
func (c *CreateInvoice) WithAmount(amount decimal.Decimal) *CreateInvoice {
	c.set("amount", amount)
	return c
}

// WithOrderCode sets the merchant's unique order reference.
func (c *CreateInvoice) WithOrderCode(code string) *CreateInvoice {
	c.set("orderCode", code)
	return c
}

func (c *CreateInvoice) WithDescription(description string) *CreateInvoice {
	c.set("description", description)
	return c
}

func (c *CreateInvoice) WithOrderItems(items ...OrderItem) *CreateInvoice {
	c.set("orderItems", items)
	return c
}

func (c *CreateInvoice) WithShippingCost(cost decimal.Decimal) *CreateInvoice {
	c.set("shippingCost", cost)
	return c
}

func (c *CreateInvoice) WithTax(tax decimal.Decimal) *CreateInvoice {
	c.set("tax", tax)
	return c
}

func (c *CreateInvoice) GetAmount() decimal.Decimal {
	return c.dec("amount")
}

func (c *CreateInvoice) GetOrderCode() string {
	return c.str("orderCode")
}

func (c *CreateInvoice) GetDescription() string {
	return c.str("description")
}

func (c *CreateInvoice) GetOrderItems() []OrderItem {
	items, _ := c.values["orderItems"].([]OrderItem)
	return items
}

func (c *CreateInvoice) GetShippingCost() decimal.Decimal {
	return c.dec("shippingCost")
}

func (c *CreateInvoice) GetTax() decimal.Decimal {
	return c.dec("tax")
}
