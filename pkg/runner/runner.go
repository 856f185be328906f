// Package runner orchestrates analysis and fixing across many dump
// files. Documents are independent — each owns its tree — so they are
// processed concurrently; fix application within one document is never
// parallelized because proposals may conflict by span.
package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/flintlabs/flint/internal/logging"
	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/fix"
	"github.com/flintlabs/flint/pkg/fsutil"
	"github.com/flintlabs/flint/pkg/lint"
	"github.com/flintlabs/flint/pkg/parser/treedump"
)

// Runner processes dump files with a shared engine.
type Runner struct {
	// Engine performs per-document analysis.
	Engine *lint.Engine
}

// New creates a Runner over the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers dump files under opts.Paths and processes them
// concurrently. The returned outcomes follow discovery order
// regardless of scheduling.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	outcomes := make([]FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.processFile(groupCtx, path, opts)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result, nil
}

// processFile decodes, analyzes, and optionally fixes one dump.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	doc, index, err := treedump.DecodeFile(path)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	logger := logging.FromContext(ctx)

	res, err := r.Engine.Analyze(ctx, doc, index, cfg)
	outcome.Result = res
	if err != nil {
		outcome.Err = err
		return outcome
	}
	logger.Debug("analyzed document",
		logging.FieldPath, path,
		logging.FieldFindingsTotal, len(res.Findings),
		logging.FieldRuleFaults, len(res.Faults),
	)

	if !cfg.Fix || len(res.FixPlan) == 0 {
		return outcome
	}

	batch, err := fix.ApplyAll(doc, res.FixPlan)
	if err != nil {
		outcome.Err = fmt.Errorf("fix %s: %w", path, err)
		return outcome
	}
	outcome.Applied = batch.Applied
	outcome.Skipped = batch.Skipped
	logger.Debug("applied fixes",
		logging.FieldPath, path,
		logging.FieldFixesApplied, len(batch.Applied),
		logging.FieldFixesSkipped, len(batch.Skipped),
	)

	if cfg.DryRun || len(batch.Applied) == 0 {
		return outcome
	}

	data, err := treedump.Encode(batch.Doc, index)
	if err != nil {
		outcome.Err = fmt.Errorf("encode %s: %w", path, err)
		return outcome
	}

	if opts.Backup {
		if _, err := fsutil.CreateBackup(ctx, path); err != nil {
			outcome.Err = err
			return outcome
		}
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, data, 0)
	if err != nil {
		outcome.Err = fmt.Errorf("write %s: %w", path, err)
		return outcome
	}
	outcome.Written = written

	return outcome
}
