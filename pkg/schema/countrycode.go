package schema

import "strings"

// FallbackCountryCode is the broad, catch-all address format used for
// territories the schema provider does not recognize on their own.
const FallbackCountryCode = "ZZ"

// fallbackTerritories lists territory/region codes the provider has no
// dedicated format for. They are remapped onto the fallback format before
// querying. Static configuration, never computed.
var fallbackTerritories = map[string]struct{}{
	"AC": {}, // Ascension Island
	"CP": {}, // Clipperton Island
	"DG": {}, // Diego Garcia
	"EA": {}, // Ceuta & Melilla
	"IC": {}, // Canary Islands
	"TA": {}, // Tristan da Cunha
	"XK": {}, // Kosovo
}

// NormalizeCountryCode upper-cases the code and remaps unrecognized
// territories onto FallbackCountryCode. Unknown input passes through
// unchanged; the provider decides whether it can serve it.
func NormalizeCountryCode(code string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if _, ok := fallbackTerritories[normalized]; ok {
		return FallbackCountryCode
	}
	return normalized
}
