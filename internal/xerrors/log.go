package xerrors

import (
	"context"
	"log/slog"

	"github.com/zyclope0/supernovafit-sub004/internal/xcontext"
	"github.com/zyclope0/supernovafit-sub004/internal/xslog"
)

// Log writes err at a level matching its kind. Errors that are not *Error log as internal.
// The run id stored on ctx, if any, is attached.
func Log(ctx context.Context, err error) {
	appErr := As(err)
	if appErr == nil {
		appErr = Internal(WithCause(err))
	}

	logger := xslog.FromContext(ctx)
	attrs := []any{
		slog.String("kind", appErr.Kind.String()),
		slog.String("message", appErr.Message),
	}
	if runID, ok := xcontext.GetRunID(ctx); ok {
		attrs = append(attrs, xslog.RunID(runID))
	}
	if appErr.Cause != nil {
		attrs = append(attrs, xslog.ErrorGroup(appErr.Cause))
	}
	if appErr.Validation != nil {
		attrs = append(attrs, slog.Any("fields", appErr.Validation.Fields))
	}

	switch appErr.Kind {
	case KindInternal:
		logger.ErrorContext(ctx, "internal error", attrs...)
	default:
		logger.WarnContext(ctx, "input error", attrs...)
	}
}
