// Package zoneselect is a small, extraction-friendly HTTP component serving a
// country's zone options (states/provinces/regions) as JSON, with typeahead
// search over the displayed labels.
package zoneselect
