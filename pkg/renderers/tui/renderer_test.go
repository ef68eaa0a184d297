package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-addressform/pkg/render"
	"github.com/goliatone/go-addressform/pkg/schema"
	"github.com/goliatone/go-addressform/pkg/zones"
)

// scriptedDriver answers prompts from a fixed script and records what it was
// asked.
type scriptedDriver struct {
	inputAnswer  string
	selectAnswer int
	err          error

	inputs  []InputConfig
	selects []SelectConfig
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.inputs = append(d.inputs, cfg)
	if d.err != nil {
		return "", d.err
	}
	return d.inputAnswer, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.selects = append(d.selects, cfg)
	if d.err != nil {
		return 0, d.err
	}
	return d.selectAnswer, nil
}

func newScriptedRenderer(t *testing.T, driver *scriptedDriver) *Renderer {
	t.Helper()
	renderer, err := New(WithDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestRenderField_TextPromptReportsAnswer(t *testing.T) {
	driver := &scriptedDriver{inputAnswer: "1 Main St"}
	renderer := newScriptedRenderer(t, driver)

	var got string
	view := render.FieldView{
		Key:      schema.FieldStreet1,
		Label:    "Address",
		Required: true,
		Value:    "previous",
		OnChange: func(value string) { got = value },
	}
	if err := renderer.RenderField(context.Background(), nil, view); err != nil {
		t.Fatalf("render field: %v", err)
	}

	if got != "1 Main St" {
		t.Fatalf("unexpected answer: %q", got)
	}
	if len(driver.inputs) != 1 {
		t.Fatalf("expected one input prompt, got %d", len(driver.inputs))
	}
	cfg := driver.inputs[0]
	if cfg.Message != "Address" || cfg.Default != "previous" {
		t.Fatalf("unexpected prompt config: %#v", cfg)
	}
	if cfg.Validator == nil {
		t.Fatalf("required field must carry a validator")
	}
	if err := cfg.Validator(""); err == nil {
		t.Fatalf("validator must reject empty answers")
	}
	if err := cfg.Validator("x"); err != nil {
		t.Fatalf("validator must accept non-empty answers: %v", err)
	}
}

func TestRenderField_OptionalFieldSkipsValidator(t *testing.T) {
	driver := &scriptedDriver{}
	renderer := newScriptedRenderer(t, driver)

	view := render.FieldView{Key: schema.FieldStreet2, Label: "Apartment"}
	if err := renderer.RenderField(context.Background(), nil, view); err != nil {
		t.Fatalf("render field: %v", err)
	}

	cfg := driver.inputs[0]
	if cfg.Validator != nil {
		t.Fatalf("optional field must not carry a validator")
	}
	if cfg.Help != "optional" {
		t.Fatalf("unexpected help text: %q", cfg.Help)
	}
}

func TestRenderField_ZoneSelectMapsIndexToValue(t *testing.T) {
	driver := &scriptedDriver{selectAnswer: 1}
	renderer := newScriptedRenderer(t, driver)

	var got string
	view := render.FieldView{
		Key:   schema.FieldZone,
		Label: "Province",
		Value: "Ontario",
		ZoneOptions: []zones.Option{
			{Value: "Ontario", Label: "Ontario - ON"},
			{Value: "Quebec", Label: "Quebec - QC"},
		},
		OnChange: func(value string) { got = value },
	}
	if err := renderer.RenderField(context.Background(), nil, view); err != nil {
		t.Fatalf("render field: %v", err)
	}

	if got != "Quebec" {
		t.Fatalf("unexpected zone value: %q", got)
	}
	cfg := driver.selects[0]
	if len(cfg.Options) != 2 || cfg.Options[0] != "Ontario - ON" {
		t.Fatalf("unexpected select options: %#v", cfg.Options)
	}
	if cfg.DefaultIndex != 0 {
		t.Fatalf("default index must match the current value: %d", cfg.DefaultIndex)
	}
}

func TestRenderField_ZoneWithoutOptionsUsesTextPrompt(t *testing.T) {
	driver := &scriptedDriver{inputAnswer: "Somewhere"}
	renderer := newScriptedRenderer(t, driver)

	view := render.FieldView{Key: schema.FieldZone, Label: "Region"}
	if err := renderer.RenderField(context.Background(), nil, view); err != nil {
		t.Fatalf("render field: %v", err)
	}
	if len(driver.selects) != 0 || len(driver.inputs) != 1 {
		t.Fatalf("expected a text prompt, got %d selects %d inputs", len(driver.selects), len(driver.inputs))
	}
}

func TestRenderField_SelectionOutOfRange(t *testing.T) {
	driver := &scriptedDriver{selectAnswer: 5}
	renderer := newScriptedRenderer(t, driver)

	view := render.FieldView{
		Key:         schema.FieldZone,
		Label:       "Province",
		ZoneOptions: []zones.Option{{Value: "Ontario", Label: "Ontario - ON"}},
	}
	if err := renderer.RenderField(context.Background(), nil, view); err == nil {
		t.Fatalf("expected error for out-of-range selection")
	}
}

func TestRenderField_DriverErrorPropagates(t *testing.T) {
	driver := &scriptedDriver{err: ErrInterrupted}
	renderer := newScriptedRenderer(t, driver)

	view := render.FieldView{Key: schema.FieldCity, Label: "City"}
	err := renderer.RenderField(context.Background(), nil, view)
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
}

func TestRenderField_CancelledContext(t *testing.T) {
	driver := &scriptedDriver{}
	renderer := newScriptedRenderer(t, driver)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	view := render.FieldView{Key: schema.FieldCity, Label: "City"}
	if err := renderer.RenderField(ctx, nil, view); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(driver.inputs) != 0 {
		t.Fatalf("no prompt should run after cancellation")
	}
}
