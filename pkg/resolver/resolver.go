// Package resolver maps parsed format tokens to fully resolved, render-ready
// field descriptors.
package resolver

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-addressform/pkg/schema"
	"github.com/goliatone/go-addressform/pkg/zones"
)

// Field is the render-ready descriptor for one address input. Recomputed in
// full every time the country changes, never partially patched.
type Field struct {
	Key         schema.FieldKey `json:"key"`
	Label       string          `json:"label"`
	Required    bool            `json:"required"`
	ZoneOptions []zones.Option  `json:"zoneOptions,omitempty"`
}

// Option customises resolution behaviour.
type Option func(*config)

type config struct {
	allOptional bool
	logger      zerolog.Logger
}

// WithAllOptional forces every resolved field to be non-required regardless
// of the schema's optional set.
func WithAllOptional() Option {
	return func(c *config) {
		c.allOptional = true
	}
}

// WithLogger supplies the logger used when schema inconsistencies are skipped.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Resolve walks the parsed keys in order and attaches labels, requiredness,
// and, for the zone field, the candidate option list. A key without a label
// cannot be rendered: it is logged and skipped, never fatal. Output order
// matches the input order exactly and is deterministic for identical inputs.
func Resolve(keys []schema.FieldKey, sch schema.CountrySchema, options ...Option) []Field {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		label, ok := sch.Label(key)
		if !ok {
			cfg.logger.Warn().
				Str("country", sch.CountryCode).
				Str("field", string(key)).
				Msg("schema has no label for field, skipping")
			continue
		}

		field := Field{
			Key:      key,
			Label:    label,
			Required: !cfg.allOptional && !sch.Optional(key),
		}
		if key == schema.FieldZone {
			field.ZoneOptions = zones.BuildOptions(sch.Zones)
			if field.ZoneOptions == nil {
				// The zone field still resolves with an empty option list;
				// the renderer decides how to degrade.
				field.ZoneOptions = []zones.Option{}
			}
		}
		fields = append(fields, field)
	}
	return fields
}

// Keys lists the field keys present in a resolved set, preserving order.
func Keys(fields []Field) []schema.FieldKey {
	keys := make([]schema.FieldKey, 0, len(fields))
	for _, field := range fields {
		keys = append(keys, field.Key)
	}
	return keys
}
