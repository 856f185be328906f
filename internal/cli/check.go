package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flintlabs/flint/internal/logging"
	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/lint"
	"github.com/flintlabs/flint/pkg/lint/rules"
	"github.com/flintlabs/flint/pkg/runner"
)

// checkOptions are the flags of the check command.
type checkOptions struct {
	format  string
	jobs    int
	workers int
	enable  []string
	disable []string
}

func newCheckCommand(global *globalOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Analyze tree dumps and report findings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			applyCheckFlags(cfg, opts)

			result, err := runAnalysis(cmd, global, cfg, args, runner.Options{Jobs: opts.jobs})
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

	return cmd
}

// loadConfig resolves the effective configuration for a command.
func loadConfig(global *globalOptions) (*config.Config, error) {
	if global.configPath == "" {
		return config.NewConfig(), nil
	}
	cfg, err := config.Load(global.configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyCheckFlags(cfg *config.Config, opts *checkOptions) {
	cfg.Format = config.OutputFormat(opts.format)
	cfg.Jobs = opts.jobs
	cfg.Workers = opts.workers
	cfg.EnableRules = opts.enable
	cfg.DisableRules = opts.disable
}

// runAnalysis builds the engine and processes the given paths.
func runAnalysis(
	cmd *cobra.Command,
	global *globalOptions,
	cfg *config.Config,
	paths []string,
	runOpts runner.Options,
) (*runner.Result, error) {
	engine := lint.NewEngine(rules.NewRegistry())
	engine.Workers = cfg.Workers

	runOpts.Paths = paths
	runOpts.Config = cfg
	if runOpts.Jobs == 0 {
		runOpts.Jobs = cfg.Jobs
	}

	result, err := runner.New(engine).Run(cmd.Context(), runOpts)
	if err != nil {
		return nil, err
	}

	logFaults(global, result)
	return result, nil
}

// logFaults reports isolated rule failures without affecting output.
func logFaults(_ *globalOptions, result *runner.Result) {
	logger := logging.Default()
	for _, file := range result.Files {
		if file.Result == nil {
			continue
		}
		for _, fault := range file.Result.Faults {
			logger.Warn("rule evaluation fault",
				logging.FieldRule, fault.RuleID,
				logging.FieldPath, file.Path,
				logging.FieldSpan, fmt.Sprintf("%d-%d", fault.Span.Start, fault.Span.End),
				logging.FieldError, fault.Err,
			)
		}
	}
}

