// Package addressform resolves country-dependent postal address forms: which
// fields apply for a country, in what order, with which labels and
// requiredness, plus zone (state/province/region) option lists, and
// reconciles previously entered values when the country changes.
package addressform

import (
	"bytes"
	"context"

	"github.com/goliatone/go-addressform/pkg/address"
	"github.com/goliatone/go-addressform/pkg/orchestrator"
	"github.com/goliatone/go-addressform/pkg/render"
	"github.com/goliatone/go-addressform/pkg/resolver"
	"github.com/goliatone/go-addressform/pkg/schema"
	"github.com/goliatone/go-addressform/pkg/zones"
)

// FieldKey identifies one resolvable address field.
type FieldKey = schema.FieldKey

// Field key enumeration, re-exported for convenience.
const (
	FieldStreet1    = schema.FieldStreet1
	FieldStreet2    = schema.FieldStreet2
	FieldCity       = schema.FieldCity
	FieldPostalCode = schema.FieldPostalCode
	FieldZone       = schema.FieldZone
)

// Zone is one subdivision entry from a country schema.
type Zone = schema.Zone

// CountrySchema is the normalized per-country address format descriptor.
type CountrySchema = schema.CountrySchema

// Provider supplies country schemas; see pkg/schema.
type Provider = schema.Provider

// Field is a fully resolved, render-ready field descriptor.
type Field = resolver.Field

// Value is the caller-owned address input keyed by field.
type Value = address.Value

// ZoneOption is one selectable zone entry.
type ZoneOption = zones.Option

// FieldView is the per-field payload handed to field renderers.
type FieldView = render.FieldView

// Request and Result bracket one resolution of the address form.
type (
	Request = orchestrator.Request
	Result  = orchestrator.Result
)

// Session is the asynchronous country-change state machine.
type Session = orchestrator.Session

// State enumerates session positions in the country-change cycle.
type State = orchestrator.State

const (
	StateIdle     = orchestrator.StateIdle
	StateLoading  = orchestrator.StateLoading
	StateResolved = orchestrator.StateResolved
	StateFailed   = orchestrator.StateFailed
)

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so callers can start with a single import.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewSession wraps a fresh orchestrator in the stale-suppression session.
func NewSession(options ...orchestrator.SessionOption) *Session {
	return orchestrator.NewSession(orchestrator.New(), options...)
}

// ResolveHTML resolves the form for one country and renders it with the
// default HTML renderer. It is the simplest entry point for callers that just
// want markup.
func ResolveHTML(ctx context.Context, countryCode, locale string, value Value, options ...orchestrator.Option) ([]byte, error) {
	orch := orchestrator.New(options...)
	result, err := orch.Resolve(ctx, Request{
		CountryCode: countryCode,
		Locale:      locale,
		Value:       value,
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := orch.Render(ctx, &buf, result, "", nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
