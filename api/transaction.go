package api

import (
	"github.com/kochabx/slydepay/core/validator"
)

// lookup identifies an existing order by any of its references.
var lookup = []validator.Requirement{validator.OneOf("orderCode", "payToken", "transactionId")}

// CheckPaymentStatus queries the status of an order.
type CheckPaymentStatus struct {
	*Operation
}

// NewCheckPaymentStatus creates an empty CheckPaymentStatus.
func NewCheckPaymentStatus(opts ...Option) *CheckPaymentStatus {
	return &CheckPaymentStatus{newOperation(definition{
		name:     "CheckPaymentStatus",
		path:     "invoice/checkstatus",
		required: lookup,
		token:    "payToken",
	}, opts)}
}

func (c *CheckPaymentStatus) WithOrderCode(code string) *CheckPaymentStatus {
	c.set("orderCode", code)
	return c
}

func (c *CheckPaymentStatus) WithPayToken(token string) *CheckPaymentStatus {
	c.set("payToken", token)
	return c
}

func (c *CheckPaymentStatus) WithTransactionID(id string) *CheckPaymentStatus {
	c.set("transactionId", id)
	return c
}

// WithConfirmTransaction confirms a paid order in the same call.
func (c *CheckPaymentStatus) WithConfirmTransaction(confirm bool) *CheckPaymentStatus {
	c.set("confirmTransaction", confirm)
	return c
}

func (c *CheckPaymentStatus) GetOrderCode() string {
	return c.str("orderCode")
}

func (c *CheckPaymentStatus) GetPayToken() string {
	return c.str("payToken")
}

func (c *CheckPaymentStatus) GetTransactionID() string {
	return c.str("transactionId")
}

func (c *CheckPaymentStatus) GetConfirmTransaction() bool {
	confirm, _ := c.values["confirmTransaction"].(bool)
	return confirm
}

// ConfirmTransaction settles a paid order.
type ConfirmTransaction struct {
	*Operation
}

// NewConfirmTransaction creates an empty ConfirmTransaction.
func NewConfirmTransaction(opts ...Option) *ConfirmTransaction {
	return &ConfirmTransaction{newOperation(definition{
		name:     "ConfirmTransaction",
		path:     "transaction/confirm",
		required: lookup,
		token:    "payToken",
	}, opts)}
}

func (c *ConfirmTransaction) WithOrderCode(code string) *ConfirmTransaction {
	c.set("orderCode", code)
	return c
}

func (c *ConfirmTransaction) WithPayToken(token string) *ConfirmTransaction {
	c.set("payToken", token)
	return c
}

func (c *ConfirmTransaction) WithTransactionID(id string) *ConfirmTransaction {
	c.set("transactionId", id)
	return c
}

func (c *ConfirmTransaction) GetOrderCode() string {
	return c.str("orderCode")
}

func (c *ConfirmTransaction) GetPayToken() string {
	return c.str("payToken")
}

func (c *ConfirmTransaction) GetTransactionID() string {
	return c.str("transactionId")
}

// CancelTransaction cancels an unpaid or disputed order.
type CancelTransaction struct {
	*Operation
}

// NewCancelTransaction creates an empty CancelTransaction.
func NewCancelTransaction(opts ...Option) *CancelTransaction {
	return &CancelTransaction{newOperation(definition{
		name:     "CancelTransaction",
		path:     "transaction/cancel",
		required: lookup,
		token:    "payToken",
	}, opts)}
}

func (c *CancelTransaction) WithOrderCode(code string) *CancelTransaction {
	c.set("orderCode", code)
	return c
}

func (c *CancelTransaction) WithPayToken(token string) *CancelTransaction {
	c.set("payToken", token)
	return c
}

func (c *CancelTransaction) WithTransactionID(id string) *CancelTransaction {
	c.set("transactionId", id)
	return c
}

func (c *CancelTransaction) GetOrderCode() string {
	return c.str("orderCode")
}

func (c *CancelTransaction) GetPayToken() string {
	return c.str("payToken")
}

func (c *CancelTransaction) GetTransactionID() string {
	return c.str("transactionId")
}
