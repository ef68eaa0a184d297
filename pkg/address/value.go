// Package address holds the caller-owned address value and the reconciliation
// logic that keeps it consistent with a freshly resolved field set.
package address

import (
	"sort"
	"strings"

	"github.com/goliatone/go-addressform/pkg/schema"
)

// Value is the user's current input keyed by field. The caller owns it; this
// package only reads it and proposes pruned copies, never mutating in place.
// An absent key means the field was never set.
type Value map[schema.FieldKey]string

// Clone returns an independent copy. A nil receiver clones to an empty Value.
func (v Value) Clone() Value {
	out := make(Value, len(v))
	for key, val := range v {
		out[key] = val
	}
	return out
}

// Reconcile prunes prev down to the keys allowed under the newly resolved
// field set. Surviving values are untouched. When nothing is extraneous the
// input map is returned as-is, so callers can compare references to skip
// redundant downstream updates. A nil prev reconciles to an empty Value.
func Reconcile(prev Value, allowed []schema.FieldKey) Value {
	if prev == nil {
		return Value{}
	}
	if len(prev) == 0 {
		return prev
	}

	allowedSet := make(map[schema.FieldKey]struct{}, len(allowed))
	for _, key := range allowed {
		allowedSet[key] = struct{}{}
	}

	extraneous := false
	for key := range prev {
		if _, ok := allowedSet[key]; !ok {
			extraneous = true
			break
		}
	}
	if !extraneous {
		return prev
	}

	out := make(Value, len(prev))
	for key, val := range prev {
		if _, ok := allowedSet[key]; ok {
			out[key] = val
		}
	}
	return out
}

// Canonical produces a deterministic serialization for diffing: keys sorted
// lexicographically, present values joined by newline. Two values with the
// same key/value pairs always serialize identically regardless of insertion
// order.
func Canonical(v Value) string {
	if len(v) == 0 {
		return ""
	}
	keys := make([]string, 0, len(v))
	for key := range v {
		keys = append(keys, string(key))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, v[schema.FieldKey(key)])
	}
	return strings.Join(parts, "\n")
}
