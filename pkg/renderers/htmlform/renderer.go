// Package htmlform renders resolved address fields as plain, framework-free
// HTML controls.
package htmlform

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-addressform/pkg/render"
	"github.com/goliatone/go-addressform/pkg/schema"
)

const rendererName = "htmlform"

// Renderer writes one labelled control per field: a text input, or a select
// when zone options are present. Labels and zone names originate from an
// external schema provider, so label text passes through a strict sanitizer
// before escaping.
type Renderer struct {
	policy *bluemonday.Policy
}

// Option customises the renderer.
type Option func(*Renderer)

// WithPolicy overrides the sanitizer applied to provider-supplied label text.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// New constructs the HTML field renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{policy: bluemonday.StrictPolicy()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Name() string { return rendererName }

func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// RenderField implements render.FieldRenderer. Output is static markup; the
// field key travels in the control's name attribute so a host form can merge
// submitted values back by key.
func (r *Renderer) RenderField(ctx context.Context, w io.Writer, view render.FieldView) error {
	if ctx == nil {
		return fmt.Errorf("htmlform: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if w == nil {
		return fmt.Errorf("htmlform: writer is required")
	}

	label := strings.TrimSpace(r.policy.Sanitize(view.Label))
	id := "addressform-" + string(view.Key)

	var markup strings.Builder
	markup.WriteString(`<div class="addressform-field" data-field-key="` + html.EscapeString(string(view.Key)) + `">`)
	markup.WriteString(`<label for="` + id + `">` + html.EscapeString(label))
	if view.Required {
		markup.WriteString(`<span class="addressform-required" aria-hidden="true">*</span>`)
	}
	markup.WriteString(`</label>`)

	if view.Key == schema.FieldZone && len(view.ZoneOptions) > 0 {
		markup.WriteString(r.selectControl(id, view))
	} else {
		markup.WriteString(r.inputControl(id, view))
	}
	markup.WriteString(`</div>` + "\n")

	_, err := io.WriteString(w, markup.String())
	return err
}

func (r *Renderer) inputControl(id string, view render.FieldView) string {
	var control strings.Builder
	control.WriteString(`<input type="text" id="` + id + `" name="` + html.EscapeString(string(view.Key)) + `"`)
	if view.Value != "" {
		control.WriteString(` value="` + html.EscapeString(view.Value) + `"`)
	}
	if view.Required {
		control.WriteString(` required`)
	}
	control.WriteString(`>`)
	return control.String()
}

func (r *Renderer) selectControl(id string, view render.FieldView) string {
	var control strings.Builder
	control.WriteString(`<select id="` + id + `" name="` + html.EscapeString(string(view.Key)) + `"`)
	if view.Required {
		control.WriteString(` required`)
	}
	control.WriteString(`>`)
	control.WriteString(`<option value=""></option>`)
	for _, option := range view.ZoneOptions {
		label := strings.TrimSpace(r.policy.Sanitize(option.Label))
		control.WriteString(`<option value="` + html.EscapeString(option.Value) + `"`)
		if option.Value == view.Value {
			control.WriteString(` selected`)
		}
		control.WriteString(`>` + html.EscapeString(label) + `</option>`)
	}
	control.WriteString(`</select>`)
	return control.String()
}
