package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeToml(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "slang.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture toml: %v", err)
	}
	return path
}

func TestLoadMissingBindSectionKeepsDefaults(t *testing.T) {
	path := writeToml(t, `[other]
key = "value"
`)
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if opts != want {
		t.Fatalf("Load() = %+v, want defaults %+v", opts, want)
	}
}

func TestLoadOverlaysOnlyDefinedFields(t *testing.T) {
	path := writeToml(t, `[bind]
quiet = true
max_diagnostics = 50
`)
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !opts.Quiet {
		t.Errorf("expected Quiet=true from the file")
	}
	if opts.MaxDiagnostics != 50 {
		t.Errorf("expected MaxDiagnostics=50 from the file, got %d", opts.MaxDiagnostics)
	}
	// Untouched fields keep Default()'s values.
	if opts.Color != "auto" {
		t.Errorf("expected Color to keep default 'auto', got %q", opts.Color)
	}
	if opts.Jobs != 0 {
		t.Errorf("expected Jobs to keep default 0, got %d", opts.Jobs)
	}
}

func TestLoadInvalidTomlReturnsError(t *testing.T) {
	path := writeToml(t, `not valid toml ===`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for malformed TOML")
	}
}

func TestShouldColorize(t *testing.T) {
	tests := []struct {
		name       string
		color      string
		isTerminal bool
		want       bool
	}{
		{"on forces true", "on", false, true},
		{"off forces false", "off", true, false},
		{"auto true when terminal", "auto", true, true},
		{"auto false when not terminal", "auto", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := BindOptions{Color: tt.color}
			if got := opts.ShouldColorize(tt.isTerminal); got != tt.want {
				t.Errorf("ShouldColorize(%v) = %v, want %v", tt.isTerminal, got, tt.want)
			}
		})
	}
}
