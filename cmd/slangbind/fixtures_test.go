package main

import (
	"context"
	"testing"

	"github.com/winging/slang/internal/config"
	"github.com/winging/slang/internal/diag"
	"github.com/winging/slang/internal/driver"
	"github.com/winging/slang/internal/types"
)

func TestSelfCheckUnitsBindCleanlyOrWithExpectedDiagnostics(t *testing.T) {
	sharedTypes := types.NewInterner()
	units := selfCheckUnits(sharedTypes)
	if len(units) != 2 {
		t.Fatalf("selfCheckUnits() returned %d units, want 2", len(units))
	}

	results, err := driver.BindUnits(context.Background(), units, sharedTypes, config.Default())
	if err != nil {
		t.Fatalf("BindUnits: %v", err)
	}
	byName := make(map[string]driver.Result, len(results))
	for _, r := range results {
		byName[r.Name] = r
	}

	widen, ok := byName["self-check/widen"]
	if !ok {
		t.Fatalf("missing self-check/widen result")
	}
	if widen.Diags.HasErrors() {
		t.Errorf("self-check/widen should bind without errors, got %+v", widen.Diags.Items())
	}

	tooMany, ok := byName["self-check/too-many-args"]
	if !ok {
		t.Fatalf("missing self-check/too-many-args result")
	}
	if !tooMany.Diags.HasErrors() {
		t.Fatalf("self-check/too-many-args should report a diagnostic")
	}
	found := false
	for _, d := range tooMany.Diags.Items() {
		if d.Code == diag.SemaTooManyArguments {
			found = true
		}
	}
	if !found {
		t.Errorf("self-check/too-many-args diagnostics = %+v, want SemaTooManyArguments", tooMany.Diags.Items())
	}
}
