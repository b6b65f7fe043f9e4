package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/winging/slang/internal/cache"
	"github.com/winging/slang/internal/config"
	"github.com/winging/slang/internal/diag"
	"github.com/winging/slang/internal/driver"
	"github.com/winging/slang/internal/types"
	"github.com/winging/slang/internal/ui"
)

var (
	bindWatch   bool
	bindNoCache bool
)

func init() {
	bindCmd.Flags().BoolVar(&bindWatch, "watch", false, "show a live progress UI while binding")
	bindCmd.Flags().BoolVar(&bindNoCache, "no-cache", false, "bypass the on-disk diagnostic cache")
}

// bindCmd implements SPEC_FULL.md's DOMAIN STACK CLI surface: it binds a
// set of compilation units concurrently (internal/driver) and prints each
// unit's rendered diagnostics (internal/diag). It always binds a small
// fixture set (see fixtures.go) that exercises the binder end to end and
// reads no input files, since this module's front end (lexer/parser) is
// out of scope.
var bindCmd = &cobra.Command{
	Use:   "bind",
	Short: "Bind the configured units and report diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		opts, err := loadOptions(cmd, configPath)
		if err != nil {
			return err
		}

		var diskCache *cache.DiskCache
		if !bindNoCache {
			diskCache, err = cache.Open("slangbind")
			if err != nil {
				return fmt.Errorf("opening diagnostic cache: %w", err)
			}
		}

		sharedTypes := types.NewInterner()
		units := selfCheckUnits(sharedTypes)

		ctx := cmd.Context()
		var results []driver.Result
		if bindWatch && isTerminal(os.Stdout) && !opts.Quiet {
			results, err = bindWithProgress(ctx, units, sharedTypes, opts)
		} else {
			results, err = driver.BindUnits(ctx, units, sharedTypes, opts)
		}
		if err != nil {
			return err
		}

		colorize := opts.ShouldColorize(isTerminal(os.Stdout))
		failed := false
		for _, r := range results {
			text := diag.Render(r.Diags)
			if r.Diags.HasErrors() {
				failed = true
			}
			if diskCache != nil {
				key := cache.Sum([]byte(r.Name))
				_ = diskCache.Put(key, cache.Payload{
					UnitName: r.Name,
					DiagText: text,
					HadError: r.Diags.HasErrors(),
				})
			}
			printUnitResult(cmd, r.Name, text, colorize)
		}
		if failed {
			return fmt.Errorf("one or more units failed to bind cleanly")
		}
		return nil
	},
}

// loadOptions overlays slang.toml (if present) and explicit flags onto the
// defaults, in that order — a flag the user actually passed always wins
// over the config file, which in turn wins over config.Default().
func loadOptions(cmd *cobra.Command, path string) (config.BindOptions, error) {
	opts := config.Default()
	if _, err := os.Stat(path); err == nil {
		loaded, err := config.Load(path)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	if cmd.Flags().Changed("color") {
		opts.Color, _ = cmd.Flags().GetString("color")
	}
	if cmd.Flags().Changed("quiet") {
		opts.Quiet, _ = cmd.Flags().GetBool("quiet")
	}
	if cmd.Flags().Changed("timings") {
		opts.Timings, _ = cmd.Flags().GetBool("timings")
	}
	if cmd.Flags().Changed("max-diagnostics") {
		opts.MaxDiagnostics, _ = cmd.Flags().GetInt("max-diagnostics")
	}
	if cmd.Flags().Changed("jobs") {
		opts.Jobs, _ = cmd.Flags().GetInt("jobs")
	}
	return opts, nil
}

// bindWithProgress runs the bind concurrently with a bubbletea progress UI
// fed by internal/driver's event channel (see internal/ui/progress.go).
func bindWithProgress(ctx context.Context, units []driver.Unit, sharedTypes *types.Interner, opts config.BindOptions) ([]driver.Result, error) {
	events := make(chan driver.Event, len(units))
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.Name
	}

	var results []driver.Result
	var bindErr error
	done := make(chan struct{})
	go func() {
		results, bindErr = driver.BindUnitsWithEvents(ctx, units, sharedTypes, opts, events)
		close(done)
	}()

	program := tea.NewProgram(ui.NewProgressModel("binding", names, events))
	if _, err := program.Run(); err != nil {
		return nil, err
	}
	<-done
	return results, bindErr
}

func printUnitResult(cmd *cobra.Command, name, diagText string, colorize bool) {
	out := cmd.OutOrStdout()
	header := name
	if colorize {
		if diagText == "" {
			header = color.New(color.FgGreen).Sprint(name)
		} else {
			header = color.New(color.FgRed).Sprint(name)
		}
	}
	fmt.Fprintf(out, "== %s ==\n", header)
	if diagText == "" {
		fmt.Fprintln(out, "  (no diagnostics)")
		return
	}
	fmt.Fprint(out, diagText)
}
