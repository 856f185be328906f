// Package cli provides the Cobra command structure for flint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/flintlabs/flint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalOptions are flags shared by all subcommands.
type globalOptions struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root flint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "flint",
		Short: "A rule-based analyzer and self-fixing rewriter for program tree dumps",
		Long: `flint inspects serialized program trees exported by a compiler front
end, reports discouraged code patterns, and rewrites them into the
preferred form where an automated fix is safe.

Rules are independent subscribers to syntax node kinds; a single tree
traversal fans each node out to every interested rule. Fixes are pure
tree transforms, applied one at a time or batched per document with
deterministic conflict skipping.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand(opts))
	rootCmd.AddCommand(newFixCommand(opts))
	rootCmd.AddCommand(newRulesCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
