package cli

import (
	"github.com/spf13/cobra"

	"github.com/flintlabs/flint/pkg/runner"
)

// fixOptions are the flags of the fix command.
type fixOptions struct {
	checkOptions
	dryRun   bool
	backup   bool
	fixRules []string
}

func newFixCommand(global *globalOptions) *cobra.Command {
	opts := &fixOptions{}

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Apply automatic fixes to tree dumps",
		Long: `fix analyzes the given tree dumps and rewrites each document with
every applicable fix. Overlapping fixes within a document are resolved
deterministically: proposals are ordered by span and a proposal that
conflicts with an already accepted one is skipped, never merged.

Files are only rewritten when their content actually changes. Use
--dry-run to see what would be fixed without touching any file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			applyCheckFlags(cfg, &opts.checkOptions)
			cfg.Fix = true
			cfg.DryRun = opts.dryRun
			cfg.FixRules = opts.fixRules

			result, err := runAnalysis(cmd, global, cfg, args, runner.Options{
				Jobs:   opts.jobs,
				Backup: opts.backup,
			})
			if err != nil {
				return err
			}

			return reportResult(cmd, global, cfg, result)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "number of files processed concurrently (0 = auto)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel rule evaluation within a document (0 = sequential)")
	cmd.Flags().StringSliceVar(&opts.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&opts.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "report fixes without writing files")
	cmd.Flags().BoolVar(&opts.backup, "backup", false, "write a .orig backup before rewriting a file")
	cmd.Flags().StringSliceVar(&opts.fixRules, "fix-rules", nil,
		"restrict automatic fixing to these rule IDs")

	return cmd
}
