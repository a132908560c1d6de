package paths

import (
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	t.Setenv("HOME", "/home/runner")

	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"flag wins", []string{"a.json", "b.json"}, "a.json"},
		{"skips empty", []string{"", "b.json"}, "b.json"},
		{"default", []string{"", ""}, filepath.Join("/home/runner", ".config", "supernovafit", "dataset.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.candidates...)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}
