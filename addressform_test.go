package addressform

import (
	"context"
	"strings"
	"testing"
)

func TestResolveHTML_USForm(t *testing.T) {
	out, err := ResolveHTML(context.Background(), "us", "en", Value{
		FieldStreet1: "1 Main St",
		FieldZone:    "California",
	})
	if err != nil {
		t.Fatalf("resolve html: %v", err)
	}

	markup := string(out)
	for _, want := range []string{
		`data-field-key="street1"`,
		`value="1 Main St"`,
		`<select id="addressform-zone"`,
		`selected>California - CA</option>`,
	} {
		if !strings.Contains(markup, want) {
			t.Fatalf("markup missing %q:\n%s", want, markup)
		}
	}

	street1 := strings.Index(markup, `data-field-key="street1"`)
	city := strings.Index(markup, `data-field-key="city"`)
	zone := strings.Index(markup, `data-field-key="zone"`)
	if !(street1 < city && city < zone) {
		t.Fatalf("fields out of order: street1=%d city=%d zone=%d", street1, city, zone)
	}
}

func TestResolveHTML_UnknownCountry(t *testing.T) {
	if _, err := ResolveHTML(context.Background(), "QQ", "en", nil); err == nil {
		t.Fatalf("expected error for an unknown country")
	}
}
