// Package api implements the Slydepay merchant operations as fluent request builders.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kochabx/slydepay"
	"github.com/kochabx/slydepay/auth"
	"github.com/kochabx/slydepay/core/validator"
	"github.com/kochabx/slydepay/errors"
	"github.com/kochabx/slydepay/log"
	"github.com/kochabx/slydepay/transport"
)

// HandlerFactory builds the transport for one run. slydepay.DefaultHandlerFactory is used unless overridden.
type HandlerFactory func(cfg *slydepay.Config) transport.Doer

// State of an operation.
type State int

const (
	// StateUnvalidated is the state after construction or any setter.
	StateUnvalidated State = iota
	// StateExecuted is the state after a successful Run.
	StateExecuted
)

func (s State) String() string {
	switch s {
	case StateUnvalidated:
		return "unvalidated"
	case StateExecuted:
		return "executed"
	default:
		return "unknown"
	}
}

// definition declares what a concrete operation sends.
type definition struct {
	name     string
	path     string
	required []validator.Requirement
	// remote maps a field to its request body key when they differ
	remote map[string]string
	// token is the field whose value is signed as the pay-token
	token string
}

// Operation is the shared request pipeline embedded by every concrete operation.
// An Operation is owned by a single goroutine.
type Operation struct {
	def      definition
	values   map[string]any
	cfg      *slydepay.Config
	factory  HandlerFactory
	logger   *log.Logger
	validate validator.Validator
	strict   bool
	state    State
}

func newOperation(def definition, opts []Option) *Operation {
	o := &Operation{
		def:      def,
		values:   make(map[string]any),
		factory:  slydepay.DefaultHandlerFactory,
		validate: validator.Validate,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.G()
	}
	return o
}

// Name returns the operation name.
func (o *Operation) Name() string {
	return o.def.name
}

// Path returns the operation path below /api/merchant.
func (o *Operation) Path() string {
	return o.def.path
}

// State returns the current state.
func (o *Operation) State() State {
	return o.state
}

// InjectConfig binds cfg. The config is shared, not copied.
func (o *Operation) InjectConfig(cfg *slydepay.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

// Config returns the bound config, nil before InjectConfig.
func (o *Operation) Config() *slydepay.Config {
	return o.cfg
}

// Missing returns the required fields not yet set, in declaration order.
func (o *Operation) Missing() []string {
	return o.validate.Missing(o.values, o.def.required...)
}

// Run validates the fields, sends the request and returns the decoded body.
// Nothing is sent when a required field or the config is missing.
func (o *Operation) Run(ctx context.Context) (Result, error) {
	if missing := o.Missing(); len(missing) > 0 {
		o.logger.Debug().Str("operation", o.def.name).Strs("missing", missing).Msg("operation rejected")
		return nil, errors.MissingParameter(missing...)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}

	endpoint, err := slydepay.Endpoint(o.def.path)
	if err != nil {
		return nil, errors.Transport(err)
	}

	if o.def.token != "" {
		token, _ := o.values[o.def.token].(string)
		ctx = auth.WithToken(ctx, token)
	}

	start := time.Now()
	var result Result
	resp, err := transport.NewClient(o.factory(o.cfg)).Request(http.MethodPost, endpoint, o.body(),
		transport.WithContext(ctx),
		transport.WithResponse(&result),
	)
	if err != nil {
		if resp != nil && o.strict && !success(resp.StatusCode) {
			err = errors.UnexpectedStatus(resp.StatusCode).WithCause(err)
		}
		o.logger.Debug().
			Str("operation", o.def.name).
			Object("error", errors.FromError(err)).
			Msg("operation failed")
		return nil, err
	}

	o.logger.Debug().
		Str("operation", o.def.name).
		Str("path", o.def.path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("operation executed")

	if o.strict && !success(resp.StatusCode) {
		return result, errors.UnexpectedStatus(resp.StatusCode)
	}

	o.state = StateExecuted
	return result, nil
}

func (o *Operation) set(field string, value any) {
	o.values[field] = value
	o.state = StateUnvalidated
}

func (o *Operation) str(field string) string {
	s, _ := o.values[field].(string)
	return s
}

func (o *Operation) dec(field string) decimal.Decimal {
	d, _ := o.values[field].(decimal.Decimal)
	return d
}

// body holds the credentials and every field set, under the remote keys.
func (o *Operation) body() map[string]any {
	body := make(map[string]any, len(o.values)+2)
	body["emailOrMobileNumber"] = o.cfg.AccountIdentifier()
	body["merchantKey"] = o.cfg.MerchantKey()

	for field, value := range o.values {
		key := field
		if remote, ok := o.def.remote[field]; ok {
			key = remote
		}
		body[key] = encode(value)
	}
	return body
}

func encode(value any) any {
	if d, ok := value.(decimal.Decimal); ok {
		return json.Number(d.String())
	}
	return value
}

func success(status int) bool {
	return status >= 200 && status < 300
}
