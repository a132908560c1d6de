package xslog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zyclope0/supernovafit-sub004/internal/env"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"Warn", LevelWarn, false},
		{"error", LevelError, false},
		{"trace", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLoggerFor(t *testing.T) {
	t.Parallel()

	var jsonBuf, textBuf bytes.Buffer
	NewLoggerFor(&jsonBuf, LevelInfo, env.Production).Info("hello", Calories(350))
	NewLoggerFor(&textBuf, LevelInfo, env.Development).Info("hello", Calories(350))

	if !strings.Contains(jsonBuf.String(), `"calories":350`) {
		t.Errorf("production logger should write JSON, got %q", jsonBuf.String())
	}
	if !strings.Contains(textBuf.String(), "calories=350") {
		t.Errorf("development logger should write text, got %q", textBuf.String())
	}

	var quiet bytes.Buffer
	NewLoggerFor(&quiet, LevelWarn, env.Production).Info("dropped")
	if quiet.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", quiet.String())
	}
}
