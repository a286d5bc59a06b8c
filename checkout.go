package slydepay

import (
	"github.com/skip2/go-qrcode"

	"github.com/kochabx/slydepay/transport"
)

// CheckoutPath is the hosted payment page.
const CheckoutPath = "/paylive/detailsnew.aspx"

// DefaultQRCodeSize is the PNG edge length in pixels.
const DefaultQRCodeSize = 256

// CheckoutURL returns the hosted page where a customer completes payment of payToken.
func CheckoutURL(payToken string) string {
	return transport.BuildHTTPS(Host, CheckoutPath).SetQuery("pay_token", payToken).String()
}

// CheckoutQRCode encodes CheckoutURL(payToken) as a PNG. size <= 0 selects DefaultQRCodeSize.
func CheckoutQRCode(payToken string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRCodeSize
	}
	return qrcode.Encode(CheckoutURL(payToken), qrcode.Medium, size)
}
