package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"aniorg/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// Writer receives console output. Defaults to os.Stderr.
	Writer io.Writer
	// FilePath, when set, receives a copy of every record.
	FilePath    string
	Development bool
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	addSource := opts.Development || level <= slog.LevelDebug

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}
	build := func(w io.Writer) (slog.Handler, error) {
		switch format {
		case "json":
			return newJSONHandler(w, levelVar, addSource), nil
		case "console":
			return newPrettyHandler(w, levelVar, addSource), nil
		default:
			return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
		}
	}

	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	console, err := build(writer)
	if err != nil {
		return nil, err
	}

	var file slog.Handler
	if path := strings.TrimSpace(opts.FilePath); path != "" {
		out, err := openLogFile(path)
		if err != nil {
			return nil, err
		}
		if file, err = build(out); err != nil {
			return nil, err
		}
	}

	return slog.New(newFanoutHandler(console, file)), nil
}

// NewFromConfig creates a logger using application config defaults. When
// paths.log_dir is set each run appends to a timestamped file there, and
// files older than logging.retention_days are pruned. Dry runs log to w only.
func NewFromConfig(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console", Writer: w})
	}

	opts := Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: w,
	}
	logDir := strings.TrimSpace(cfg.Paths.LogDir)
	if cfg.Organize.DryRun {
		logDir = ""
	}
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
		opts.FilePath = filepath.Join(logDir, RunLogName(time.Now()))
	}

	logger, err := New(opts)
	if err != nil {
		return nil, err
	}
	if logDir != "" {
		CleanupOldLogs(logger, cfg.Logging.RetentionDays, RetentionTarget{
			Dir:     logDir,
			Pattern: runLogPattern,
			Exclude: []string{opts.FilePath},
		})
	}
	return logger, nil
}

const runLogPattern = "aniorg-*.log"

// RunLogName returns the log file name used for a run started at ts.
func RunLogName(ts time.Time) string {
	return "aniorg-" + ts.Format("20060102-150405") + ".log"
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openLogFile(path string) (io.Writer, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}
