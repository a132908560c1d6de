package xcontext

import "context"

type runIDKey struct{}

// SetRunID tags every log line of one CLI invocation.
func SetRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

func GetRunID(ctx context.Context) (string, bool) {
	runID, ok := ctx.Value(runIDKey{}).(string)
	return runID, ok
}
