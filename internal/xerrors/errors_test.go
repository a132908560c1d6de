package xerrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zyclope0/supernovafit-sub004/internal/xcontext"
	"github.com/zyclope0/supernovafit-sub004/internal/xslog"
)

func TestError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"default message", Internal(), "internal"},
		{"custom message", NotFound(WithMessage("dataset missing")), "dataset missing"},
		{"with cause", Invalid(WithMessage("bad input"), WithCause(cause)), "bad input: boom"},
		{
			name: "validation fields sorted",
			err:  Validation(map[string]string{"sex": "bad", "age": "too old"}),
			want: "validation failed (age: too old; sex: bad)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsThroughWrap(t *testing.T) {
	t.Parallel()

	inner := Validation(map[string]string{"kcal": "must not be negative"})
	wrapped := fmt.Errorf("meals[0]: %w", inner)

	if got := As(wrapped); got != inner {
		t.Errorf("As() = %v, want %v", got, inner)
	}
	if diff := cmp.Diff(map[string]string{"kcal": "must not be negative"}, Fields(wrapped)); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
	if Fields(errors.New("plain")) != nil {
		t.Error("Fields() of a plain error should be nil")
	}
}

func TestWithFieldPrefixAndMerge(t *testing.T) {
	t.Parallel()

	a := Validation(map[string]string{"duration_min": "must not be negative"}, WithFieldPrefix("workouts[1]."))
	b := Validation(map[string]string{"kcal": "must not be negative"}, WithFieldPrefix("meals[0]."))

	got := Merge(a, nil, b)
	want := map[string]string{
		"workouts[1].duration_min": "must not be negative",
		"meals[0].kcal":            "must not be negative",
	}
	if diff := cmp.Diff(want, got.Validation.Fields); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
	if got.Kind != KindInvalid {
		t.Errorf("Kind = %v, want invalid", got.Kind)
	}

	if Merge(nil, nil) != nil {
		t.Error("Merge() of nothing should be nil")
	}
}

func TestLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := xslog.WithLogger(context.Background(), xslog.NewLogger(&buf, xslog.LevelDebug))

	Log(ctx, Validation(map[string]string{"age": "too old"}))
	Log(ctx, errors.New("disk on fire"))

	out := buf.String()
	for _, want := range []string{`"level":"WARN"`, `"msg":"input error"`, `"age":"too old"`, `"level":"ERROR"`, `"message":"disk on fire"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "run_id") {
		t.Errorf("run_id logged without one on the context:\n%s", out)
	}
}

func TestLog_RunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := xslog.WithLogger(context.Background(), xslog.NewLogger(&buf, xslog.LevelDebug))
	ctx = xcontext.SetRunID(ctx, "run-42")

	Log(ctx, NotFound(WithMessage("dataset missing")))

	out := buf.String()
	for _, want := range []string{`"kind":"not found"`, `"run_id":"run-42"`, `"level":"WARN"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}
