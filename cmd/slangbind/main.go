// Command slangbind is a thin CLI front end over the binder library,
// grounded on the teacher's cmd/surge/main.go: a cobra root command with
// persistent color/quiet/timings/max-diagnostics flags, and a version
// subcommand for build fingerprints.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/winging/slang/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "slangbind",
	Short: "Semantic binder for a SystemVerilog-family expression and statement core",
	Long:  `slangbind binds an already-parsed syntax tree against a scope graph and reports diagnostics.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(bindCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show per unit")
	rootCmd.PersistentFlags().Int("jobs", 0, "number of units to bind concurrently (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().String("config", "slang.toml", "path to the bind configuration file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to an interactive terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
