package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// HTTPProvider fetches country schemas as JSON documents from a remote
// endpoint. The endpoint receives the country code and locale as query
// parameters and answers with a single schema payload.
type HTTPProvider struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// HTTPOption configures an HTTPProvider before construction.
type HTTPOption func(*HTTPProvider)

// WithHTTPClient swaps the http.Client used for schema fetches.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(p *HTTPProvider) {
		if client != nil {
			p.client = client
		}
	}
}

// WithRequestTimeout bounds each schema fetch. Zero disables the bound; the
// remote service owns retry policy either way.
func WithRequestTimeout(timeout time.Duration) HTTPOption {
	return func(p *HTTPProvider) {
		p.timeout = timeout
	}
}

// NewHTTPProvider builds a provider pointed at the given endpoint URL.
func NewHTTPProvider(endpoint string, options ...HTTPOption) (*HTTPProvider, error) {
	if endpoint == "" {
		return nil, errors.New("schema: http provider endpoint is required")
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("schema: invalid endpoint %q: %w", endpoint, err)
	}
	provider := &HTTPProvider{
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(provider)
	}
	return provider, nil
}

// schemaPayload is the wire shape; labels and optional keys arrive keyed by
// raw field-key strings and are narrowed here, at the boundary.
type schemaPayload struct {
	Format   string            `json:"format"`
	Labels   map[string]string `json:"labels"`
	Optional []string          `json:"optional"`
	Zones    []Zone            `json:"zones"`
}

// GetSchema implements Provider. Fetch failures surface as *ProviderError,
// malformed payloads as *SchemaError.
func (p *HTTPProvider) GetSchema(ctx context.Context, countryCode, locale string) (CountrySchema, error) {
	if ctx == nil {
		return CountrySchema{}, errors.New("schema: context is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if p.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	query := url.Values{}
	query.Set("country", countryCode)
	if locale != "" {
		query.Set("locale", locale)
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, p.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return CountrySchema{}, &ProviderError{CountryCode: countryCode, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return CountrySchema{}, &ProviderError{CountryCode: countryCode, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return CountrySchema{}, &ProviderError{
			CountryCode: countryCode,
			Err:         errors.New("unexpected status " + resp.Status),
		}
	}

	var payload schemaPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return CountrySchema{}, &ProviderError{CountryCode: countryCode, Err: err}
	}

	return payload.toSchema(countryCode)
}

func (p schemaPayload) toSchema(countryCode string) (CountrySchema, error) {
	out := CountrySchema{
		CountryCode: countryCode,
		Format:      p.Format,
		Zones:       append([]Zone{}, p.Zones...),
	}
	if len(p.Labels) > 0 {
		out.Labels = make(map[FieldKey]string, len(p.Labels))
		for raw, label := range p.Labels {
			key := FieldKey(raw)
			if !key.Known() {
				continue
			}
			out.Labels[key] = label
		}
	}
	for _, raw := range p.Optional {
		key := FieldKey(raw)
		if !key.Known() {
			continue
		}
		out.OptionalKeys = append(out.OptionalKeys, key)
	}
	if err := out.Validate(); err != nil {
		return CountrySchema{}, err
	}
	return out, nil
}
