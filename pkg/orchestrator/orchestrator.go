// Package orchestrator coordinates the full pipeline from country code to
// resolved field descriptors and a reconciled address value.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-addressform/components/countries"
	"github.com/goliatone/go-addressform/pkg/address"
	"github.com/goliatone/go-addressform/pkg/format"
	"github.com/goliatone/go-addressform/pkg/render"
	"github.com/goliatone/go-addressform/pkg/renderers/htmlform"
	"github.com/goliatone/go-addressform/pkg/resolver"
	"github.com/goliatone/go-addressform/pkg/schema"
	"github.com/goliatone/go-addressform/pkg/zones"
)

const defaultRendererName = "htmlform"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithProvider injects the schema provider used for country lookups.
func WithProvider(provider schema.Provider) Option {
	return func(o *Orchestrator) {
		o.provider = provider
	}
}

// WithRegistry injects a field renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a render call omits an
// explicit renderer name.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithAllOptional forces every resolved field to be non-required, overriding
// each schema's optional set.
func WithAllOptional() Option {
	return func(o *Orchestrator) {
		o.allOptional = true
	}
}

// WithLogger supplies the logger used for degraded-schema and stale-result
// reporting. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator runs the country change pipeline: normalize the country code,
// fetch the schema, parse the format, resolve fields, reconcile the previous
// value, and revalidate the zone selection. It applies sensible defaults
// (embedded country dataset, htmlform renderer) while remaining open to
// dependency injection.
type Orchestrator struct {
	provider        schema.Provider
	registry        *render.Registry
	defaultRenderer string
	allOptional     bool
	logger          zerolog.Logger
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one resolution of the address form.
type Request struct {
	// CountryCode selects the address format. Normalized before the provider
	// lookup; territory codes without their own format map to the broad
	// fallback format.
	CountryCode string

	// Locale selects the label language. The field set never varies by
	// locale.
	Locale string

	// Value is the previously entered address, if any. Never mutated; the
	// result carries a pruned copy when pruning is needed.
	Value address.Value
}

// Result is the outcome of a successful resolution.
type Result struct {
	// CountryCode is the normalized code the schema was fetched for.
	CountryCode string

	// Fields are the render-ready descriptors, in format order.
	Fields []resolver.Field

	// Value is the reconciled address value. When no pruning was necessary
	// this is the request's value unchanged, so callers may compare
	// references to skip redundant updates.
	Value address.Value

	// ZoneCleared reports that a previously chosen zone no longer appears in
	// the new option list and was dropped from Value.
	ZoneCleared bool
}

// Resolve executes provider fetch → parse → resolve → reconcile → zone
// revalidation. Recoverable schema inconsistencies (missing labels, empty
// zone lists) degrade gracefully inside the pipeline; only a fetch failure or
// a truly malformed schema surfaces as an error.
func (o *Orchestrator) Resolve(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(req.CountryCode) == "" {
		return Result{}, errors.New("orchestrator: country code is required")
	}

	code := schema.NormalizeCountryCode(req.CountryCode)

	sch, err := o.provider.GetSchema(ctx, code, req.Locale)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: fetch schema for %q: %w", code, err)
	}

	keys, err := format.Parse(sch.Format)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: parse format for %q: %w", code, err)
	}

	resolveOpts := []resolver.Option{resolver.WithLogger(o.logger)}
	if o.allOptional {
		resolveOpts = append(resolveOpts, resolver.WithAllOptional())
	}
	fields := resolver.Resolve(keys, sch, resolveOpts...)

	value := address.Reconcile(req.Value, resolver.Keys(fields))

	result := Result{
		CountryCode: code,
		Fields:      fields,
		Value:       value,
	}

	for _, field := range fields {
		if field.Key != schema.FieldZone {
			continue
		}
		current, set := value[schema.FieldZone]
		if !set {
			break
		}
		if zones.ValidateSelection(field.ZoneOptions, current) == "" {
			// Clear on a copy; the reconciled value may still be the
			// caller's map.
			pruned := value.Clone()
			delete(pruned, schema.FieldZone)
			result.Value = pruned
			result.ZoneCleared = true
		}
		break
	}

	return result, nil
}

// Render invokes a field renderer once per resolved field, in order. onChange
// receives per-key updates from interactive renderers; pass nil for static
// output. rendererName may be empty to use the configured default.
func (o *Orchestrator) Render(ctx context.Context, w io.Writer, result Result, rendererName string, onChange func(key schema.FieldKey, value string)) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}

	renderer, err := o.rendererFor(rendererName)
	if err != nil {
		return err
	}

	for _, field := range result.Fields {
		view := render.FieldView{
			Key:         field.Key,
			Label:       field.Label,
			Required:    field.Required,
			Value:       result.Value[field.Key],
			ZoneOptions: field.ZoneOptions,
		}
		if onChange != nil {
			key := field.Key
			view.OnChange = func(value string) {
				onChange(key, value)
			}
		}
		if err := renderer.RenderField(ctx, w, view); err != nil {
			return fmt.Errorf("orchestrator: render field %q: %w", field.Key, err)
		}
	}
	return nil
}

func (o *Orchestrator) rendererFor(name string) (render.FieldRenderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.provider == nil {
		provider, err := countries.NewProvider()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default provider: %w", err)
		} else {
			o.provider = provider
		}
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := htmlform.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
