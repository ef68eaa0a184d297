package schema

import "strings"

// FieldKey identifies one of the address inputs this library resolves. Any
// other token found in a country format template is ignored.
type FieldKey string

const (
	FieldStreet1    FieldKey = "street1"
	FieldStreet2    FieldKey = "street2"
	FieldCity       FieldKey = "city"
	FieldPostalCode FieldKey = "postalCode"
	FieldZone       FieldKey = "zone"
)

// Known reports whether the key belongs to the resolvable field enumeration.
func (k FieldKey) Known() bool {
	switch k {
	case FieldStreet1, FieldStreet2, FieldCity, FieldPostalCode, FieldZone:
		return true
	default:
		return false
	}
}

// Zone is one entry in a country's subdivision list (state/province/region).
// Entries are sourced externally; names are not assumed unique.
type Zone struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// CountrySchema describes how a single country lays out its postal address
// form: token order, per-field labels, the optional subset, and subdivision
// entries when the format includes a zone field.
//
// Providers normalize their raw payloads into this shape at the boundary;
// nothing downstream sees untyped provider data.
type CountrySchema struct {
	CountryCode  string              `json:"countryCode"`
	Format       string              `json:"format"`
	Labels       map[FieldKey]string `json:"labels"`
	OptionalKeys []FieldKey          `json:"optionalKeys,omitempty"`
	Zones        []Zone              `json:"zones,omitempty"`
}

// Optional reports whether the given field is non-mandatory in this country.
func (s CountrySchema) Optional(key FieldKey) bool {
	for _, candidate := range s.OptionalKeys {
		if candidate == key {
			return true
		}
	}
	return false
}

// Label returns the human-readable label for the key, if the schema has one.
func (s CountrySchema) Label(key FieldKey) (string, bool) {
	label, ok := s.Labels[key]
	if !ok || strings.TrimSpace(label) == "" {
		return "", false
	}
	return label, true
}

// Validate checks the invariants providers must uphold. A schema without a
// format template cannot drive the parser and is reported as a SchemaError.
func (s CountrySchema) Validate() error {
	if strings.TrimSpace(s.Format) == "" {
		return &SchemaError{CountryCode: s.CountryCode, Reason: "missing format template"}
	}
	return nil
}

// Clone returns a deep copy so callers can hold schemas without sharing
// provider-owned maps and slices.
func (s CountrySchema) Clone() CountrySchema {
	out := CountrySchema{
		CountryCode: s.CountryCode,
		Format:      s.Format,
	}
	if s.Labels != nil {
		out.Labels = make(map[FieldKey]string, len(s.Labels))
		for key, label := range s.Labels {
			out.Labels[key] = label
		}
	}
	if s.OptionalKeys != nil {
		out.OptionalKeys = append([]FieldKey{}, s.OptionalKeys...)
	}
	if s.Zones != nil {
		out.Zones = append([]Zone{}, s.Zones...)
	}
	return out
}
