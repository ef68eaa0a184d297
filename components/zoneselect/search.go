package zoneselect

import (
	"sort"
	"strings"

	"github.com/goliatone/go-addressform/pkg/zones"
)

// Search filters zone options by a case-insensitive query over the displayed
// labels, ranking prefix matches before substring matches. An empty query
// returns the head of the list up to the clamped limit; the input is already
// sorted by label.
func Search(options []zones.Option, query string, limit int, opts Options) []zones.Option {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if len(options) <= limit {
			return append([]zones.Option{}, options...)
		}
		return append([]zones.Option{}, options[:limit]...)
	}

	q := strings.ToLower(query)
	matches := make([]matchedOption, 0, 16)
	for _, option := range options {
		label := strings.ToLower(option.Label)
		if !strings.Contains(label, q) {
			continue
		}
		matches = append(matches, matchedOption{
			option:   option,
			isPrefix: strings.HasPrefix(label, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].option.Label < matches[j].option.Label
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]zones.Option, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.option)
	}
	return out
}

type matchedOption struct {
	option   zones.Option
	isPrefix bool
}
