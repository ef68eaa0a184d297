package countries

import (
	"context"
	"errors"

	"github.com/goliatone/go-addressform/pkg/schema"
)

// ErrUnknownCountry reports a code the catalog has no format for.
var ErrUnknownCountry = errors.New("countries: unknown country code")

// Options configures the provider.
type Options struct {
	Dataset *Dataset
}

// OptionFn mutates Options before the provider is built.
type OptionFn func(*Options)

// WithDataset swaps the embedded catalog for a caller-supplied one.
func WithDataset(dataset *Dataset) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Dataset = dataset
	}
}

// Provider serves country schemas from an in-memory catalog. It implements
// schema.Provider; lookups are pure map reads, so the only asynchronous
// behaviour is context cancellation.
type Provider struct {
	data *Dataset
}

// NewProvider builds a provider over the embedded dataset unless an override
// is supplied.
func NewProvider(fns ...OptionFn) (*Provider, error) {
	var opts Options
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}

	data := opts.Dataset
	if data == nil {
		loaded, err := DefaultDataset()
		if err != nil {
			return nil, err
		}
		data = loaded
	}
	return &Provider{data: data}, nil
}

// GetSchema implements schema.Provider. Unknown countries surface as a
// *schema.ProviderError wrapping ErrUnknownCountry.
func (p *Provider) GetSchema(ctx context.Context, countryCode, locale string) (schema.CountrySchema, error) {
	if ctx == nil {
		return schema.CountrySchema{}, errors.New("countries: context is required")
	}
	if err := ctx.Err(); err != nil {
		return schema.CountrySchema{}, err
	}

	sch, ok := p.data.schemaFor(countryCode, locale)
	if !ok {
		return schema.CountrySchema{}, &schema.ProviderError{CountryCode: countryCode, Err: ErrUnknownCountry}
	}
	if err := sch.Validate(); err != nil {
		return schema.CountrySchema{}, err
	}
	return sch, nil
}

// Codes lists the catalog's country codes, sorted.
func (p *Provider) Codes() []string {
	return p.data.Codes()
}
