package zones

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-addressform/pkg/schema"
)

func TestBuildOptions_SortsByLabelCaseInsensitive(t *testing.T) {
	options := BuildOptions([]schema.Zone{
		{Code: "QC", Name: "quebec"},
		{Code: "ON", Name: "Ontario"},
		{Code: "AB", Name: "alberta"},
	})

	want := []Option{
		{Value: "alberta", Label: "alberta - AB"},
		{Value: "Ontario", Label: "Ontario - ON"},
		{Value: "quebec", Label: "quebec - QC"},
	}
	if diff := cmp.Diff(want, options); diff != "" {
		t.Fatalf("unexpected options (-want +got):\n%s", diff)
	}
}

func TestBuildOptions_ValueIsNameNotCode(t *testing.T) {
	options := BuildOptions([]schema.Zone{{Code: "CA", Name: "California"}})
	if len(options) != 1 {
		t.Fatalf("expected 1 option, got %d", len(options))
	}
	if options[0].Value != "California" {
		t.Fatalf("option value must be the zone name, got %q", options[0].Value)
	}
	if options[0].Label != "California - CA" {
		t.Fatalf("unexpected label: %q", options[0].Label)
	}
}

func TestBuildOptions_TruncatesBeforeSorting(t *testing.T) {
	longName := "Autonomous Territory of the Far Northern Reaches"
	options := BuildOptions([]schema.Zone{{Code: "XX", Name: longName}})
	if len(options) != 1 {
		t.Fatalf("expected 1 option, got %d", len(options))
	}

	label := options[0].Label
	if !strings.HasSuffix(label, " - XX") {
		t.Fatalf("expected code suffix, got %q", label)
	}
	display := strings.TrimSuffix(label, " - XX")
	if display != longName[:30]+"..." {
		t.Fatalf("unexpected truncated display: %q", display)
	}
	if options[0].Value != longName {
		t.Fatalf("value must keep the full name, got %q", options[0].Value)
	}
}

func TestBuildOptions_DedupesExactDuplicates(t *testing.T) {
	options := BuildOptions([]schema.Zone{
		{Code: "ON", Name: "Ontario"},
		{Code: "ON", Name: "Ontario"},
	})
	if len(options) != 1 {
		t.Fatalf("expected 1 option, got %d: %#v", len(options), options)
	}
}

func TestBuildOptions_Deterministic(t *testing.T) {
	entries := []schema.Zone{
		{Code: "ON", Name: "Ontario"},
		{Code: "QC", Name: "Quebec"},
		{Code: "BC", Name: "British Columbia"},
	}
	first := BuildOptions(entries)
	second := BuildOptions(entries)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("expected identical output (-first +second):\n%s", diff)
	}
}

func TestBuildOptions_EmptyInput(t *testing.T) {
	if options := BuildOptions(nil); options != nil {
		t.Fatalf("expected nil, got %#v", options)
	}
}

func TestValidateSelection_ClearsMissingValue(t *testing.T) {
	options := []Option{{Value: "Ontario", Label: "Ontario - ON"}}

	if got := ValidateSelection(options, "Quebec"); got != "" {
		t.Fatalf("expected invalid selection to clear, got %q", got)
	}
	if got := ValidateSelection(options, "Ontario"); got != "Ontario" {
		t.Fatalf("expected valid selection to survive, got %q", got)
	}
}

func TestValidateSelection_EmptyValueIsNoop(t *testing.T) {
	options := []Option{{Value: "Ontario", Label: "Ontario - ON"}}
	if got := ValidateSelection(options, ""); got != "" {
		t.Fatalf("expected empty selection to pass through, got %q", got)
	}
}
