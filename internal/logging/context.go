package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for build run identifiers.
	FieldRunID = "run_id"
	// FieldSubset is the standardized structured logging key for corpus subset names.
	FieldSubset = "subset"
	// FieldProtocol is the standardized structured logging key for protocol file names.
	FieldProtocol = "protocol"
	// FieldUtterance is the standardized structured logging key for utterance identifiers.
	FieldUtterance = "utterance"
	// FieldEventType is the standardized structured logging key naming a warning or error class.
	FieldEventType = "event_type"
	// FieldErrorHint is the standardized structured logging key for remediation hints.
	FieldErrorHint = "error_hint"
)

type contextKey int

const (
	runIDContextKey contextKey = iota
	subsetContextKey
)

// WithRunID returns a context carrying the build run identifier.
func WithRunID(ctx context.Context, runID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runIDContextKey, runID)
}

// RunIDFromContext extracts the build run identifier, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDContextKey).(string)
	return id, ok && id != ""
}

// WithSubsetName returns a context carrying the corpus subset being processed.
func WithSubsetName(ctx context.Context, subset string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, subsetContextKey, subset)
}

// SubsetNameFromContext extracts the corpus subset name, if present.
func SubsetNameFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	subset, ok := ctx.Value(subsetContextKey).(string)
	return subset, ok && subset != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if subset, ok := SubsetNameFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSubset, subset))
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
