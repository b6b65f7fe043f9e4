// Package config loads the project-level binder configuration. Grounded on
// the teacher's internal/project/modules.go: a small TOML document parsed
// with toml.DecodeFile, with meta.IsDefined used to tell "section absent"
// from "section present but empty".
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// BindOptions controls one binding session, mirroring the persistent flags
// the teacher's cmd/surge root command exposes (--color, --quiet,
// --timings, --max-diagnostics) plus the driver-level options this
// module's multi-unit fan-out needs (jobs, cache).
type BindOptions struct {
	Color          string `toml:"color"`           // auto|on|off
	Quiet          bool   `toml:"quiet"`
	Timings        bool   `toml:"timings"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Jobs           int    `toml:"jobs"`            // 0 means GOMAXPROCS
	CacheDir       string `toml:"cache_dir"`       // loaded but not read by bind; --no-cache disables the disk cache
}

// Default returns the options a bare `slangbind bind` invocation uses
// absent any slang.toml or flag overrides.
func Default() BindOptions {
	return BindOptions{
		Color:          "auto",
		Quiet:          false,
		Timings:        false,
		MaxDiagnostics: 100,
		Jobs:           0,
		CacheDir:       "",
	}
}

type fileOptions struct {
	Bind struct {
		Color          string `toml:"color"`
		Quiet          bool   `toml:"quiet"`
		Timings        bool   `toml:"timings"`
		MaxDiagnostics int    `toml:"max_diagnostics"`
		Jobs           int    `toml:"jobs"`
		CacheDir       string `toml:"cache_dir"`
	} `toml:"bind"`
}

// Load reads a slang.toml manifest's [bind] section, overlaying it onto
// Default(). A missing [bind] section (meta.IsDefined false) leaves the
// defaults untouched rather than zeroing the struct out, the same
// distinction the teacher's LoadProjectModules draws for [modules].
func Load(path string) (BindOptions, error) {
	opts := Default()

	var doc fileOptions
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return opts, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("bind") {
		return opts, nil
	}

	if meta.IsDefined("bind", "color") {
		opts.Color = doc.Bind.Color
	}
	if meta.IsDefined("bind", "quiet") {
		opts.Quiet = doc.Bind.Quiet
	}
	if meta.IsDefined("bind", "timings") {
		opts.Timings = doc.Bind.Timings
	}
	if meta.IsDefined("bind", "max_diagnostics") {
		opts.MaxDiagnostics = doc.Bind.MaxDiagnostics
	}
	if meta.IsDefined("bind", "jobs") {
		opts.Jobs = doc.Bind.Jobs
	}
	if meta.IsDefined("bind", "cache_dir") {
		opts.CacheDir = doc.Bind.CacheDir
	}
	return opts, nil
}

// ShouldColorize resolves the "auto|on|off" setting against whether stdout
// is attached to a terminal, the same tri-state the teacher's --color flag
// implements (cmd/surge/main.go's isTerminal helper feeds the "auto" case).
func (o BindOptions) ShouldColorize(isTerminal bool) bool {
	switch o.Color {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal
	}
}
