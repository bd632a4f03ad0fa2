package slogx

import (
	"context"
	"log/slog"
)

type (
	ctxKey    struct{}
	holderKey struct{}
)

// loggerHolder lets the access log in HTTPMiddleware pick up attributes that
// inner handlers add after the request context was created.
type loggerHolder struct {
	logger *slog.Logger
}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithUser tags the request logger with the authenticated user id.
func WithUser(ctx context.Context, userID string) context.Context {
	l := FromContext(ctx).With("user_id", userID)
	if h, ok := ctx.Value(holderKey{}).(*loggerHolder); ok {
		h.logger = l
	}
	return WithContext(ctx, l)
}

func withHolder(ctx context.Context, h *loggerHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}
