package address

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-addressform/pkg/schema"
)

func TestReconcile_PrunesExtraneousKeys(t *testing.T) {
	prev := Value{
		schema.FieldStreet1: "1 Main St",
		schema.FieldZone:    "Bavaria",
	}

	got := Reconcile(prev, []schema.FieldKey{schema.FieldStreet1, schema.FieldCity, schema.FieldPostalCode})

	want := Value{schema.FieldStreet1: "1 Main St"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected value (-want +got):\n%s", diff)
	}
	if _, still := prev[schema.FieldZone]; !still {
		t.Fatalf("input value must not be mutated")
	}
}

func TestReconcile_IdentityFastPath(t *testing.T) {
	prev := Value{schema.FieldStreet1: "1 Main St"}

	got := Reconcile(prev, []schema.FieldKey{schema.FieldStreet1, schema.FieldCity})

	// Same map back: writes through the result are visible on the input.
	got[schema.FieldCity] = "Springfield"
	if prev[schema.FieldCity] != "Springfield" {
		t.Fatalf("expected the input map to be returned unchanged")
	}
}

func TestReconcile_NilAndEmpty(t *testing.T) {
	if got := Reconcile(nil, []schema.FieldKey{schema.FieldStreet1}); len(got) != 0 || got == nil {
		t.Fatalf("expected empty value for nil input, got %#v", got)
	}

	empty := Value{}
	if got := Reconcile(empty, nil); len(got) != 0 {
		t.Fatalf("expected no-op for empty input, got %#v", got)
	}
}

func TestCanonical_IgnoresInsertionOrder(t *testing.T) {
	a := Value{}
	a[schema.FieldStreet1] = "1 Main St"
	a[schema.FieldCity] = "Springfield"

	b := Value{}
	b[schema.FieldCity] = "Springfield"
	b[schema.FieldStreet1] = "1 Main St"

	if Canonical(a) != Canonical(b) {
		t.Fatalf("expected identical serialization: %q vs %q", Canonical(a), Canonical(b))
	}
	if Canonical(a) != "Springfield\n1 Main St" {
		t.Fatalf("unexpected serialization: %q", Canonical(a))
	}
}

func TestCanonical_ReconcileIdempotence(t *testing.T) {
	prev := Value{
		schema.FieldStreet1: "1 Main St",
		schema.FieldCity:    "Springfield",
	}
	keys := []schema.FieldKey{schema.FieldStreet1, schema.FieldCity, schema.FieldPostalCode}

	got := Reconcile(prev, keys)
	if Canonical(got) != Canonical(prev) {
		t.Fatalf("reconciling a matching value must serialize identically: %q vs %q",
			Canonical(got), Canonical(prev))
	}
}

func TestCanonical_Empty(t *testing.T) {
	if Canonical(nil) != "" {
		t.Fatalf("expected empty serialization for nil value")
	}
}

func TestClone_Independent(t *testing.T) {
	prev := Value{schema.FieldStreet1: "1 Main St"}
	clone := prev.Clone()
	clone[schema.FieldStreet1] = "2 Side St"
	if prev[schema.FieldStreet1] != "1 Main St" {
		t.Fatalf("clone must not share storage with the original")
	}
}
