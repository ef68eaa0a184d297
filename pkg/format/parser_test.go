package format

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-addressform/pkg/schema"
)

func TestParse_RecognizedTokensInFirstOccurrenceOrder(t *testing.T) {
	keys, err := Parse("{{address1}} {{city}}, {{province}} {{zip}}")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []schema.FieldKey{
		schema.FieldStreet1,
		schema.FieldCity,
		schema.FieldZone,
		schema.FieldPostalCode,
	}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
}

func TestParse_DropsUnrecognizedTokens(t *testing.T) {
	keys, err := Parse("{firstName} {lastName}_{company}_{address1}_{address2}_{city} {province} {zip}_{country}_{phone}")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []schema.FieldKey{
		schema.FieldStreet1,
		schema.FieldStreet2,
		schema.FieldCity,
		schema.FieldZone,
		schema.FieldPostalCode,
	}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
}

func TestParse_DuplicateKeepsFirstPosition(t *testing.T) {
	keys, err := Parse("{zip} {city} {zip}")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []schema.FieldKey{schema.FieldPostalCode, schema.FieldCity}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
}

func TestParse_NoRecognizedTokensIsValidAndEmpty(t *testing.T) {
	keys, err := Parse("{firstName} {lastName}_{phone}")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no keys, got %#v", keys)
	}
}

func TestParse_BlankTemplateIsSchemaError(t *testing.T) {
	for _, template := range []string{"", "   "} {
		_, err := Parse(template)
		if err == nil {
			t.Fatalf("expected error for template %q", template)
		}
		var schemaErr *schema.SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("expected SchemaError, got %T: %v", err, err)
		}
	}
}

func TestParse_AliasesAreCaseInsensitive(t *testing.T) {
	keys, err := Parse("{postalCode} {Province}")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []schema.FieldKey{schema.FieldPostalCode, schema.FieldZone}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
}
