package zoneselect

import (
	"net/http"

	"github.com/goliatone/go-addressform/pkg/schema"
)

// GuardFunc can veto a request before the provider is consulted.
type GuardFunc func(r *http.Request) error

// Options configures the zone select handler and routes.
type Options struct {
	RoutePath    string
	CountryParam string
	LocaleParam  string
	SearchParam  string
	LimitParam   string
	DefaultLimit int
	MaxLimit     int
	Guard        GuardFunc

	// Provider supplies the country schemas whose zones are served.
	Provider schema.Provider
}

// OptionFn mutates Options before the component is built.
type OptionFn func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		RoutePath:    "/api/zones",
		CountryParam: "country",
		LocaleParam:  "locale",
		SearchParam:  "q",
		LimitParam:   "limit",
		DefaultLimit: 50,
		MaxLimit:     200,
	}
}

// NewOptions applies overrides on top of the defaults and re-clamps values.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/zones"
	}
	if opts.CountryParam == "" {
		opts.CountryParam = "country"
	}
	if opts.LocaleParam == "" {
		opts.LocaleParam = "locale"
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "q"
	}
	if opts.LimitParam == "" {
		opts.LimitParam = "limit"
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 50
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 200
	}
	return opts
}

// WithRoutePath overrides the route the handler mounts at.
func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

// WithCountryParam overrides the query parameter carrying the country code.
func WithCountryParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CountryParam = name
	}
}

// WithLocaleParam overrides the query parameter carrying the locale.
func WithLocaleParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LocaleParam = name
	}
}

// WithSearchParam overrides the typeahead query parameter.
func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

// WithLimitParam overrides the result limit query parameter.
func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

// WithDefaultLimit sets the limit applied when the request omits one.
func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

// WithMaxLimit caps the per-request result limit.
func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

// WithGuard installs a request guard.
func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithProvider sets the schema provider backing the handler.
func WithProvider(provider schema.Provider) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Provider = provider
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
