package schema

import "context"

// Provider supplies country address schemas. Implementations may hit the
// network; the locale is a per-call parameter so no provider carries mutable
// locale state. Label language varies by locale, the field set does not.
type Provider interface {
	GetSchema(ctx context.Context, countryCode, locale string) (CountrySchema, error)
}

// ProviderFunc adapts a plain function into a Provider.
type ProviderFunc func(ctx context.Context, countryCode, locale string) (CountrySchema, error)

func (f ProviderFunc) GetSchema(ctx context.Context, countryCode, locale string) (CountrySchema, error) {
	return f(ctx, countryCode, locale)
}
