// Package zones turns raw subdivision entries into render-ready select
// options and validates previously chosen selections against them.
package zones

import (
	"sort"
	"strings"

	"github.com/goliatone/go-addressform/pkg/schema"
)

const (
	maxLabelLength = 30
	ellipsis       = "..."
	labelSeparator = " - "
)

// Option is one selectable zone. Value carries the zone name, not the code:
// the upstream schema identifies zones by name in submitted values. That
// match key is fragile against renamed or duplicated names but is preserved
// deliberately; see ValidateSelection.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// BuildOptions maps zone entries to display options: the name truncated for
// display and suffixed with the code for disambiguation. Truncation happens
// before sorting so sort order reflects the displayed text. Exact duplicate
// entries collapse to one option; output is sorted ascending by label,
// case-insensitively, and is deterministic for identical input.
func BuildOptions(entries []schema.Zone) []Option {
	if len(entries) == 0 {
		return nil
	}

	seen := make(map[schema.Zone]struct{}, len(entries))
	options := make([]Option, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry.Name) == "" {
			continue
		}
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		options = append(options, Option{
			Value: entry.Name,
			Label: truncate(entry.Name) + labelSeparator + entry.Code,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return strings.ToLower(options[i].Label) < strings.ToLower(options[j].Label)
	})
	return options
}

// ValidateSelection returns current unchanged when it is empty or still
// matches an option value, and "" when the selection no longer exists under
// the new option list and must be cleared. Runs whenever the option list
// changes, not on every keystroke.
func ValidateSelection(options []Option, current string) string {
	if current == "" {
		return current
	}
	for _, option := range options {
		if option.Value == current {
			return current
		}
	}
	return ""
}

func truncate(name string) string {
	runes := []rune(name)
	if len(runes) <= maxLabelLength {
		return name
	}
	return string(runes[:maxLabelLength]) + ellipsis
}
