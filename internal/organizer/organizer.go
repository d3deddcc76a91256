package organizer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"aniorg/internal/fileutil"
	"aniorg/internal/logging"
	"aniorg/internal/naming"
	"aniorg/internal/services"
)

// Outcome reports what happened to one file.
type Outcome struct {
	Source      string
	Destination string
	DryRun      bool
	Err         error
}

// OK reports whether the file was placed (or would be, for a dry run).
func (o Outcome) OK() bool { return o.Err == nil }

// Engine places parsed files. It holds no per-file state and is safe for
// concurrent use.
type Engine struct {
	logger  *slog.Logger
	linker  fileutil.Linker
	preview io.Writer
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLinker replaces the platform hard-link chain.
func WithLinker(l fileutil.Linker) Option {
	return func(e *Engine) {
		if l != nil {
			e.linker = l
		}
	}
}

// WithPreview sets where dry-run lines are written. Defaults to os.Stdout.
func WithPreview(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.preview = w
		}
	}
}

// NewEngine constructs an Engine using the platform hard-link chain.
func NewEngine(logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		logger:  logging.NewComponentLogger(logger, "organizer"),
		linker:  fileutil.NewLinker(),
		preview: os.Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Organize places rec under targetRoot according to mode. Failures never
// escape; they are logged and returned in Outcome.Err.
func (e *Engine) Organize(ctx context.Context, rec naming.EpisodeFile, targetRoot string, mode Mode, dryRun bool) Outcome {
	src := rec.SourcePath
	dest := DestinationPath(rec, targetRoot)
	out := Outcome{Source: src, Destination: dest, DryRun: dryRun}
	logger := logging.WithContext(services.WithSourcePath(ctx, src), e.logger)

	if err := validateDestination(rec, targetRoot, dest); err != nil {
		out.Err = err
		e.logFailure(logger, dest, mode, err)
		return out
	}

	if dryRun {
		fmt.Fprintf(e.preview, "[DRY-RUN] %s -> %s\n", src, dest)
		logger.Debug("dry run placement",
			logging.String(logging.FieldDestination, dest),
			logging.String(logging.FieldMode, mode.String()),
		)
		return out
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		out.Err = services.Wrap(services.ErrDirectoryCreation, "organizer", "create series directory", filepath.Dir(dest), err)
		e.logFailure(logger, dest, mode, out.Err)
		return out
	}

	if err := e.transfer(src, dest, mode); err != nil {
		out.Err = err
		e.logFailure(logger, dest, mode, err)
		return out
	}

	logger.Debug("file organized",
		logging.String(logging.FieldDestination, dest),
		logging.String(logging.FieldMode, mode.String()),
		logging.String(logging.FieldEventType, "file_organized"),
	)
	return out
}

func (e *Engine) transfer(src, dest string, mode Mode) error {
	switch mode {
	case ModeMove:
		if err := fileutil.MoveFile(src, dest); err != nil {
			return services.Wrap(services.ErrMove, "organizer", "move", "", err)
		}
	case ModeCopy:
		if err := fileutil.CopyFile(src, dest); err != nil {
			return services.Wrap(services.ErrCopy, "organizer", "copy", "", err)
		}
	case ModeLink:
		if fileutil.SameFile(src, dest) {
			return nil
		}
		if err := e.linker.CreateHardLink(dest, src); err != nil {
			err = fileutil.ClassifyLinkError("linker", src, dest, err)
			return services.Wrap(services.ErrLink, "organizer", "link", "", err)
		}
	default:
		return services.Wrap(services.ErrValidation, "organizer", "transfer", fmt.Sprintf("unsupported mode %s", mode), nil)
	}
	return nil
}

func (e *Engine) logFailure(logger *slog.Logger, dest string, mode Mode, err error) {
	kind := services.FailureKind(err)
	logging.ErrorWithContext(logger, "file placement failed", "file_failed",
		logging.String(logging.FieldDestination, dest),
		logging.String(logging.FieldMode, mode.String()),
		logging.String(logging.FieldFailureKind, kind),
		logging.String(logging.FieldErrorHint, failureHint(kind)),
		logging.Error(err),
	)
}

func failureHint(kind string) string {
	switch kind {
	case services.KindCrossDeviceLink:
		return "source and target are on different filesystems; use --mode copy or move"
	case services.KindLinkUnsupported:
		return "this filesystem cannot hard link; use --mode copy"
	case services.KindDirectoryCreation:
		return "check permissions on the target directory"
	case services.KindValidation:
		return "rename the file so the series name is a plain directory name"
	default:
		return "check permissions and free space on the target"
	}
}
