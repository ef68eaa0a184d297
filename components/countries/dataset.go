package countries

import (
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-addressform/pkg/schema"
)

//go:embed data/formats.yaml
var dataFS embed.FS

const defaultDatasetPath = "data/formats.yaml"

var (
	defaultOnce sync.Once
	defaultData *Dataset
	defaultErr  error
)

// Dataset is a parsed country address-format catalog.
type Dataset struct {
	countries map[string]record
}

type record struct {
	Format   string                    `yaml:"format"`
	Labels   map[string]string         `yaml:"labels"`
	Optional []string                  `yaml:"optional"`
	Zones    []schema.Zone             `yaml:"zones"`
	Locales  map[string]localeOverride `yaml:"locales"`
}

type localeOverride struct {
	Labels map[string]string `yaml:"labels"`
}

// DefaultDataset returns the embedded catalog, parsed once.
func DefaultDataset() (*Dataset, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultDatasetPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		defaultData, defaultErr = LoadDataset(f)
	})
	return defaultData, defaultErr
}

// LoadDataset parses a YAML catalog from r.
func LoadDataset(r io.Reader) (*Dataset, error) {
	if r == nil {
		return nil, fmt.Errorf("countries: missing reader")
	}

	var raw struct {
		Countries map[string]record `yaml:"countries"`
	}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("countries: parse dataset: %w", err)
	}
	if len(raw.Countries) == 0 {
		return nil, fmt.Errorf("countries: dataset has no countries")
	}
	return &Dataset{countries: raw.Countries}, nil
}

// Codes lists the country codes present in the catalog, sorted.
func (d *Dataset) Codes() []string {
	if d == nil {
		return nil
	}
	codes := make([]string, 0, len(d.countries))
	for code := range d.countries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Has reports whether the catalog carries a format for the code.
func (d *Dataset) Has(code string) bool {
	if d == nil {
		return false
	}
	_, ok := d.countries[code]
	return ok
}

// schemaFor builds a normalized CountrySchema for a catalog entry, applying
// locale label overrides. Unknown locales fall back to the default labels.
func (d *Dataset) schemaFor(code, locale string) (schema.CountrySchema, bool) {
	rec, ok := d.countries[code]
	if !ok {
		return schema.CountrySchema{}, false
	}

	labels := make(map[schema.FieldKey]string, len(rec.Labels))
	for raw, label := range rec.Labels {
		key := schema.FieldKey(raw)
		if !key.Known() {
			continue
		}
		labels[key] = label
	}
	if override, ok := rec.localeLabels(locale); ok {
		for raw, label := range override {
			key := schema.FieldKey(raw)
			if !key.Known() {
				continue
			}
			labels[key] = label
		}
	}

	out := schema.CountrySchema{
		CountryCode: code,
		Format:      rec.Format,
		Labels:      labels,
		Zones:       append([]schema.Zone{}, rec.Zones...),
	}
	for _, raw := range rec.Optional {
		key := schema.FieldKey(raw)
		if !key.Known() {
			continue
		}
		out.OptionalKeys = append(out.OptionalKeys, key)
	}
	return out, true
}

// localeLabels resolves a locale tag against the entry's overrides, trying
// the exact tag first and the bare language second ("fr-CA" then "fr").
func (r record) localeLabels(locale string) (map[string]string, bool) {
	if len(r.Locales) == 0 || locale == "" {
		return nil, false
	}
	tag := strings.ToLower(strings.TrimSpace(locale))
	if override, ok := r.Locales[tag]; ok {
		return override.Labels, true
	}
	if lang, _, found := strings.Cut(tag, "-"); found {
		if override, ok := r.Locales[lang]; ok {
			return override.Labels, true
		}
	}
	return nil, false
}
