package logging

import (
	"context"
	"log/slog"

	"aniorg/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID identifies one organize pass.
	FieldRunID = "run_id"
	// FieldSource is the path of the file being placed.
	FieldSource = "source"
	// FieldDestination is the computed placement path.
	FieldDestination = "destination"
	// FieldMode is the placement mode (move, copy, link).
	FieldMode = "mode"
	// FieldFailureKind is the stable label from services.FailureKind.
	FieldFailureKind = "failure_kind"
	// FieldEventType names the event a record describes.
	FieldEventType = "event_type"
	// FieldErrorHint suggests a next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact describes the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldAlert flags anomalies that should stand out in structured logs.
	FieldAlert = "alert"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if src, ok := services.SourcePathFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSource, src))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
