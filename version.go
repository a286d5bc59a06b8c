// Package slydepay is a client for the Slydepay merchant gateway.
package slydepay

import (
	"github.com/kochabx/slydepay/transport"
)

const (
	// Client is the client name sent in the User-Agent.
	Client = "slydepay-go"
	// Version is the client version sent in the User-Agent.
	Version = "1.0.0"
	// Host is the gateway host.
	Host = "app.slydepay.com.gh"
	// BasePath prefixes every merchant operation path.
	BasePath = "/api/merchant"
)

// UserAgent returns "slydepay-go v<Version>".
func UserAgent() string {
	return Client + " v" + Version
}

// Endpoint returns the absolute https URL of a merchant operation such as "invoice/send".
func Endpoint(path string) (string, error) {
	return transport.BuildHTTPS(Host, BasePath, path).Build()
}
