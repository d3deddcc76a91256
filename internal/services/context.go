package services

import "context"

type contextKey string

const (
	runIDKey  contextKey = "run_id"
	sourceKey contextKey = "source"
)

// WithRunID annotates context with the batch run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSourcePath annotates context with the file currently being processed.
func WithSourcePath(ctx context.Context, path string) context.Context {
	if path == "" {
		return ctx
	}
	return context.WithValue(ctx, sourceKey, path)
}

// SourcePathFromContext returns the file being processed if present.
func SourcePathFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(sourceKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}
