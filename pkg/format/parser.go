// Package format extracts the ordered field tokens from a country's address
// format template.
package format

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-addressform/pkg/schema"
)

var tokenPattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9]*`)

// tokenAliases maps the raw template vocabulary onto canonical field keys.
// Lookup is case-insensitive; anything absent from this table is not a field
// this library renders and is dropped.
var tokenAliases = map[string]schema.FieldKey{
	"address1":   schema.FieldStreet1,
	"street1":    schema.FieldStreet1,
	"address2":   schema.FieldStreet2,
	"street2":    schema.FieldStreet2,
	"city":       schema.FieldCity,
	"zip":        schema.FieldPostalCode,
	"postalcode": schema.FieldPostalCode,
	"province":   schema.FieldZone,
	"zone":       schema.FieldZone,
}

// Parse extracts the recognized field keys from a format template, in
// first-occurrence order. Later duplicates are ignored; a template with no
// recognized tokens yields an empty result, which is valid and means "show no
// fields". A blank template is a malformed schema.
func Parse(template string) ([]schema.FieldKey, error) {
	if strings.TrimSpace(template) == "" {
		return nil, &schema.SchemaError{Reason: "missing format template"}
	}

	seen := make(map[schema.FieldKey]struct{}, 5)
	var keys []schema.FieldKey
	for _, token := range tokenPattern.FindAllString(template, -1) {
		key, ok := tokenAliases[strings.ToLower(token)]
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys, nil
}
