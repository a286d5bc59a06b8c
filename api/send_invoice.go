package api

import (
	"github.com/kochabx/slydepay/core/validator"
)

// SendInvoice asks the gateway to push an invoice to a customer through a pay option.
type SendInvoice struct {
	*Operation
}

// NewSendInvoice creates an empty SendInvoice.
func NewSendInvoice(opts ...Option) *SendInvoice {
	return &SendInvoice{newOperation(definition{
		name:     "SendInvoice",
		path:     "invoice/send",
		required: validator.Fields("payoption", "paytoken", "customerName", "customerEmail", "customerMobileNumber"),
		remote:   map[string]string{"paytoken": "payToken"},
		token:    "paytoken",
	}, opts)}
}

// WithPayoption sets the pay option short name, e.g. "mm".
func (s *SendInvoice) WithPayoption(payoption string) *SendInvoice {
	s.set("payoption", payoption)
	return s
}

// WithPaytoken sets the pay token returned by invoice creation.
func (s *SendInvoice) WithPaytoken(paytoken string) *SendInvoice {
	s.set("paytoken", paytoken)
	return s
}

// WithCustomerName sets the payer name shown on the invoice.
func (s *SendInvoice) WithCustomerName(name string) *SendInvoice {
	s.set("customerName", name)
	return s
}

// WithCustomerEmail sets the e-mail the invoice is sent to.
func (s *SendInvoice) WithCustomerEmail(email string) *SendInvoice {
	s.set("customerEmail", email)
	return s
}

// WithCustomerMobileNumber sets the payer mobile number. It is sent as a JSON
// string, so a number such as 12345 is passed as "12345".
func (s *SendInvoice) WithCustomerMobileNumber(number string) *SendInvoice {
	s.set("customerMobileNumber", number)
	return s
}

// WithExternalAccountRef sets the optional merchant-side reference.
func (s *SendInvoice) WithExternalAccountRef(ref string) *SendInvoice {
	s.set("externalAccountRef", ref)
	return s
}

// GetPayoption returns the value set by WithPayoption.
func (s *SendInvoice) GetPayoption() string {
	return s.str("payoption")
}

// GetPaytoken returns the value set by WithPaytoken.
func (s *SendInvoice) GetPaytoken() string {
	return s.str("paytoken")
}

// GetCustomerName returns the value set by WithCustomerName.
func (s *SendInvoice) GetCustomerName() string {
	return s.str("customerName")
}

// GetCustomerEmail returns the value set by WithCustomerEmail.
func (s *SendInvoice) GetCustomerEmail() string {
	return s.str("customerEmail")
}

// GetCustomerMobileNumber returns the value set by WithCustomerMobileNumber.
func (s *SendInvoice) GetCustomerMobileNumber() string {
	return s.str("customerMobileNumber")
}

// GetExternalAccountRef returns the value set by WithExternalAccountRef.
func (s *SendInvoice) GetExternalAccountRef() string {
	return s.str("externalAccountRef")
}
