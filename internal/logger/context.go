package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// ContextWithLogger stores a logger in the context.
func ContextWithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext extracts a logger from the context.
// Returns zap.NewNop() if no logger is found.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}

// WithFields returns a context whose logger carries the given fields.
// Contexts without a logger are returned unchanged.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	l, ok := ctx.Value(ctxKey{}).(*zap.Logger)
	if !ok || l == nil {
		return ctx
	}
	return ContextWithLogger(ctx, l.With(fields...))
}

// WithDefault stores l in ctx unless ctx already carries a logger.
func WithDefault(ctx context.Context, l *zap.Logger) context.Context {
	if l == nil {
		return ctx
	}
	if existing, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && existing != nil {
		return ctx
	}
	return ContextWithLogger(ctx, l)
}
