package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-addressform/components/countries"
	"github.com/goliatone/go-addressform/pkg/address"
	"github.com/goliatone/go-addressform/pkg/orchestrator"
	"github.com/goliatone/go-addressform/pkg/render"
	"github.com/goliatone/go-addressform/pkg/renderers/htmlform"
	"github.com/goliatone/go-addressform/pkg/renderers/tui"
	"github.com/goliatone/go-addressform/pkg/schema"
)

func main() {
	country := flag.String("country", "US", "country code to resolve")
	locale := flag.String("locale", "en", "label locale")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for each field in the terminal")
	listCountries := flag.Bool("list", false, "list available country codes and exit")
	flag.Parse()

	ctx := context.Background()

	provider, err := countries.NewProvider()
	if err != nil {
		log.Fatalf("Failed to load country dataset: %v", err)
	}

	if *listCountries {
		fmt.Println(strings.Join(provider.Codes(), "\n"))
		return
	}

	registry := render.NewRegistry()
	htmlRenderer, err := htmlform.New()
	if err != nil {
		log.Fatalf("Failed to build HTML renderer: %v", err)
	}
	registry.MustRegister(htmlRenderer)
	tuiRenderer, err := tui.New()
	if err != nil {
		log.Fatalf("Failed to build TUI renderer: %v", err)
	}
	registry.MustRegister(tuiRenderer)

	orch := orchestrator.New(
		orchestrator.WithProvider(provider),
		orchestrator.WithRegistry(registry),
	)

	result, err := orch.Resolve(ctx, orchestrator.Request{
		CountryCode: *country,
		Locale:      *locale,
	})
	if err != nil {
		log.Fatalf("Failed to resolve address form: %v", err)
	}

	if *interactive {
		runInteractive(ctx, orch, result)
		return
	}

	var out strings.Builder
	if err := orch.Render(ctx, &out, result, htmlRenderer.Name(), nil); err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(out.String()), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(out.String())
	}
}

func runInteractive(ctx context.Context, orch *orchestrator.Orchestrator, result orchestrator.Result) {
	value := result.Value.Clone()
	onChange := func(key schema.FieldKey, entered string) {
		if entered == "" {
			delete(value, key)
			return
		}
		value[key] = entered
	}

	if err := orch.Render(ctx, os.Stdout, result, "tui", onChange); err != nil {
		log.Fatalf("Failed to collect address: %v", err)
	}

	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode address: %v", err)
	}
	fmt.Println(string(encoded))
	fmt.Println("canonical:", address.Canonical(value))
}
