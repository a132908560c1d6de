package xslog

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/zyclope0/supernovafit-sub004/internal/env"
)

type Level string

var _ fmt.Stringer = (*Level)(nil)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

const Default = LevelInfo

func Parse(s string) (Level, error) {
	switch Level(strings.ToLower(s)) {
	case LevelDebug:
		return LevelDebug, nil
	case LevelInfo:
		return LevelInfo, nil
	case LevelWarn:
		return LevelWarn, nil
	case LevelError:
		return LevelError, nil
	default:
		return "", fmt.Errorf("invalid log level: %q (valid: debug, info, warn, error)", s)
	}
}

func (l Level) ToSlog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l Level) String() string {
	return string(l)
}

func NewLogger(w io.Writer, level Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level.ToSlog(),
	}))
}

// NewLoggerFor uses a text handler in development and JSON everywhere else.
func NewLoggerFor(w io.Writer, level Level, environment env.Environment) *slog.Logger {
	if environment.IsDevelopment() {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level.ToSlog(),
		}))
	}
	return NewLogger(w, level)
}

// Discard is the default logger of library packages.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
