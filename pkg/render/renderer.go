// Package render defines the field renderer boundary: the pluggable callback
// invoked once per resolved field, in resolution order.
package render

import (
	"context"
	"io"

	"github.com/goliatone/go-addressform/pkg/schema"
	"github.com/goliatone/go-addressform/pkg/zones"
)

// FieldView is the per-field payload handed to a FieldRenderer. OnChange, when
// set, accepts a new scalar value for this single key; the caller merges it
// into the broader address value.
type FieldView struct {
	Key         schema.FieldKey
	Label       string
	Required    bool
	Value       string
	ZoneOptions []zones.Option
	OnChange    func(value string)
}

// FieldRenderer converts one resolved field into output on w. Interactive
// renderers may ignore w and report input through FieldView.OnChange instead.
type FieldRenderer interface {
	Name() string
	ContentType() string
	RenderField(ctx context.Context, w io.Writer, view FieldView) error
}
