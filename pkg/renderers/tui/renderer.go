// Package tui renders resolved address fields as interactive terminal
// prompts, one per field, reporting entered values through the view's
// OnChange callback.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/goliatone/go-addressform/pkg/render"
	"github.com/goliatone/go-addressform/pkg/schema"
)

const rendererName = "tui"

// Renderer prompts for each field in order: a select when zone options are
// present, a text input otherwise. Required fields reject empty answers.
type Renderer struct {
	driver PromptDriver
}

// Option customises the renderer.
type Option func(*Renderer)

// WithDriver swaps the prompt implementation; tests inject a scripted driver.
func WithDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// New constructs the terminal field renderer over a survey-backed driver.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Name() string { return rendererName }

func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// RenderField implements render.FieldRenderer. The writer is unused; input
// flows back through view.OnChange.
func (r *Renderer) RenderField(ctx context.Context, _ io.Writer, view render.FieldView) error {
	if ctx == nil {
		return fmt.Errorf("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var value string
	var err error
	if view.Key == schema.FieldZone && len(view.ZoneOptions) > 0 {
		value, err = r.promptZone(ctx, view)
	} else {
		value, err = r.promptText(ctx, view)
	}
	if err != nil {
		return err
	}

	if view.OnChange != nil {
		view.OnChange(value)
	}
	return nil
}

func (r *Renderer) promptText(ctx context.Context, view render.FieldView) (string, error) {
	cfg := InputConfig{
		Message: view.Label,
		Default: view.Value,
	}
	if view.Required {
		cfg.Validator = func(value string) error {
			if value == "" {
				return fmt.Errorf("%s is required", view.Label)
			}
			return nil
		}
	} else {
		cfg.Help = "optional"
	}
	return r.driver.Input(ctx, cfg)
}

func (r *Renderer) promptZone(ctx context.Context, view render.FieldView) (string, error) {
	labels := make([]string, 0, len(view.ZoneOptions))
	defaultIndex := -1
	for i, option := range view.ZoneOptions {
		labels = append(labels, option.Label)
		if option.Value == view.Value {
			defaultIndex = i
		}
	}

	index, err := r.driver.Select(ctx, SelectConfig{
		Message:      view.Label,
		Options:      labels,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(view.ZoneOptions) {
		return "", fmt.Errorf("tui: selection out of range for %q", view.Key)
	}
	return view.ZoneOptions[index].Value, nil
}
