package schema

import "fmt"

// SchemaError reports malformed schema data from a provider, such as a
// missing format template. It is a collaborator contract violation, not a
// user error.
type SchemaError struct {
	CountryCode string
	Reason      string
}

func (e *SchemaError) Error() string {
	if e.CountryCode == "" {
		return fmt.Sprintf("schema: %s", e.Reason)
	}
	return fmt.Sprintf("schema: country %q: %s", e.CountryCode, e.Reason)
}

// ProviderError reports a transient fetch failure (network, unknown country).
// Callers are expected to fall back to an unstructured address input.
type ProviderError struct {
	CountryCode string
	Err         error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("schema: provider failed for country %q: %v", e.CountryCode, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
