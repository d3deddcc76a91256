package workflow

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"aniorg/internal/config"
	"aniorg/internal/logging"
	"aniorg/internal/naming"
	"aniorg/internal/organizer"
	"aniorg/internal/preflight"
	"aniorg/internal/scan"
	"aniorg/internal/services"
)

// Runner executes organize passes for one configuration.
type Runner struct {
	cfg    *config.Config
	engine *organizer.Engine
	logger *slog.Logger
	mode   organizer.Mode
}

// NewRunner wires a runner. cfg must already be validated.
func NewRunner(cfg *config.Config, engine *organizer.Engine, logger *slog.Logger) (*Runner, error) {
	if cfg == nil || engine == nil {
		return nil, errors.New("workflow runner requires config and engine")
	}
	mode, err := organizer.ParseMode(cfg.Organize.Mode)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "workflow", "parse mode", "", err)
	}
	return &Runner{
		cfg:    cfg,
		engine: engine,
		logger: logging.NewComponentLogger(logger, "workflow"),
		mode:   mode,
	}, nil
}

// Run performs one pass. Per-file failures are recorded in the summary and
// never returned as an error. The error is non-nil only when the run could
// not start (lock held, unreadable source) or ctx was cancelled, in which
// case the partial summary is still returned.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, r.logger)
	summary := Summary{RunID: runID}

	org := r.cfg.Organize
	source := org.Source
	target := r.cfg.TargetDir()

	if !org.DryRun {
		unlock, lockPath, err := acquireLock(r.cfg.Paths.StateDir, target)
		if err != nil {
			return summary, err
		}
		defer func() {
			if err := unlock(); err != nil {
				logger.Warn("release run lock failed", logging.String("lock_path", lockPath), logging.Error(err))
			}
		}()
		logger.Debug("run lock acquired", logging.String("lock_path", lockPath))
	}

	if r.mode == organizer.ModeLink {
		if check := preflight.CheckSameFilesystem(source, target); !check.Passed {
			logging.WarnWithContext(logger, "hard links will fail for this run", "link_preflight",
				logging.String("detail", check.Detail),
				logging.String(logging.FieldErrorHint, "use --mode copy or pick a target on the source filesystem"),
				logging.String(logging.FieldImpact, "each file will be reported as a cross-device failure"),
			)
		}
	}

	logger.Info("organize run started",
		logging.String(logging.FieldEventType, "run_started"),
		logging.String("source_root", source),
		logging.String("target_root", target),
		logging.String(logging.FieldMode, r.mode.String()),
		logging.Bool("dry_run", org.DryRun),
	)
	started := time.Now()

	files, err := scan.Scan(source, scan.Options{
		Extensions: org.IncludeExtensions,
		OnSkip: func(path string, err error) {
			logging.WarnWithContext(logger, "directory skipped during scan", "scan_skipped",
				logging.String("path", path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check directory permissions"),
				logging.String(logging.FieldImpact, "files inside were not organized"),
			)
		},
	})
	if err != nil {
		return summary, services.Wrap(services.ErrConfiguration, "workflow", "scan source", source, err)
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			logger.Warn("organize run cancelled",
				logging.String(logging.FieldEventType, "run_cancelled"),
				logging.Int("processed", summary.Total),
				logging.Int("remaining", len(files)-summary.Total-summary.Skipped),
			)
			return summary, err
		}

		rec, ok := naming.Parse(path)
		if !ok {
			summary.Skipped++
			if org.Verbose {
				logger.Info("skipped: file name does not match the naming convention",
					logging.String(logging.FieldEventType, "file_skipped"),
					logging.String("file", filepath.Base(path)),
				)
			}
			continue
		}

		summary.Total++
		out := r.engine.Organize(ctx, rec, target, r.mode, org.DryRun)
		if out.OK() {
			summary.Succeeded++
			continue
		}
		summary.Failed++
		summary.Failures = append(summary.Failures, Failure{
			Path:        out.Source,
			Destination: out.Destination,
			Kind:        services.FailureKind(out.Err),
			Err:         out.Err,
		})
	}

	logger.Info("organize run finished",
		logging.String(logging.FieldEventType, "run_finished"),
		logging.Int("total", summary.Total),
		logging.Int("succeeded", summary.Succeeded),
		logging.Int("failed", summary.Failed),
		logging.Int("skipped", summary.Skipped),
		logging.Duration("elapsed", time.Since(started).Round(time.Millisecond)),
	)
	return summary, nil
}
