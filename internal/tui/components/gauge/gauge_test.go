package gauge

import (
	"image/color"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/zyclope0/supernovafit-sub004/internal/tui/components/braille"
)

func ptr(v float64) *float64 { return &v }

func TestFraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value *float64
		max   float64
		want  float64
	}{
		{"no data", nil, 100, 0},
		{"half", ptr(50), 100, 0.5},
		{"over max", ptr(150), 100, 1},
		{"negative", ptr(-3), 100, 0},
		{"zero max", ptr(3), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := New(tt.value, tt.max, "X", color.White).Fraction(); got != tt.want {
				t.Errorf("Fraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRender_Shape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		gauge     Gauge
		wantLines int
		wantWidth int
		wantText  []string
	}{
		{
			name:      "no data",
			gauge:     New(nil, 100, "GOAL", color.White),
			wantLines: defaultDotsSize/4 + 1,
			wantWidth: defaultDotsSize / 2,
			wantText:  []string{"--", "GOAL"},
		},
		{
			name:      "percent",
			gauge:     New(ptr(75), 100, "GOAL", color.White, WithFormat(Percent)),
			wantLines: defaultDotsSize/4 + 1,
			wantWidth: defaultDotsSize / 2,
			wantText:  []string{"75%", "GOAL"},
		},
		{
			name:      "small ring",
			gauge:     New(ptr(0.4), 1, "RATE", color.White, WithSize(26)),
			wantLines: 24/4 + 1,
			wantWidth: 24 / 2,
			wantText:  []string{"0.4", "RATE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := tt.gauge.Render()
			if got := lipgloss.Height(out); got != tt.wantLines {
				t.Errorf("height = %d, want %d", got, tt.wantLines)
			}
			if got := lipgloss.Width(out); got != tt.wantWidth {
				t.Errorf("width = %d, want %d", got, tt.wantWidth)
			}
			plain := braille.StripANSI(out)
			for _, want := range tt.wantText {
				if !strings.Contains(plain, want) {
					t.Errorf("render missing %q:\n%s", want, plain)
				}
			}
		})
	}
}

func TestOverlayArcsRaw_Coloring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		bgStr         string
		fillStr       string
		expectBgParts bool
		expectFill    bool
	}{
		{
			name:          "full fill covers background",
			bgStr:         "⣿⣿⣿",
			fillStr:       "⣿⣿⣿",
			expectBgParts: false,
			expectFill:    true,
		},
		{
			name:          "no fill shows background",
			bgStr:         "⣿⣿⣿",
			fillStr:       "   ",
			expectBgParts: true,
			expectFill:    false,
		},
		{
			name:          "partial fill shows both colors",
			bgStr:         "⣿⣿⣿",
			fillStr:       "⣿  ",
			expectBgParts: true,
			expectFill:    true,
		},
		{
			name:          "empty braille in fill uses bg color",
			bgStr:         "⣿⣿⣿",
			fillStr:       "⠀⠀⠀",
			expectBgParts: true,
			expectFill:    false,
		},
	}

	bgColor := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	fillColor := color.RGBA{R: 255, G: 0, B: 0, A: 255}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := overlayArcsRaw(tt.bgStr, tt.fillStr, bgColor, fillColor)
			if !strings.Contains(result, "\x1b[") {
				t.Error("expected ANSI color codes in output")
			}

			distinctCodes := make(map[string]bool)
			for _, p := range strings.Split(result, "\x1b[")[1:] {
				if idx := strings.Index(p, "m"); idx != -1 {
					distinctCodes[p[:idx+1]] = true
				}
			}
			if tt.expectBgParts && tt.expectFill && len(distinctCodes) < 2 {
				t.Errorf("expected multiple distinct color codes for mixed bg/fill, got %d", len(distinctCodes))
			}

			if got := braille.StripANSI(result); got != "⣿⣿⣿" {
				t.Errorf("visible cells = %q, want the background shape", got)
			}
		})
	}
}

func TestWithTextColor(t *testing.T) {
	t.Parallel()

	orange := color.RGBA{R: 255, G: 138, A: 255}
	g := New(ptr(-0.3), 1, "KG/WEEK", color.White, WithTextColor(orange))
	if g.TextColor != orange {
		t.Fatalf("TextColor = %v, want %v", g.TextColor, orange)
	}

	plain := New(ptr(-0.3), 1, "KG/WEEK", color.White).Render()
	colored := g.Render()
	if plain == colored {
		t.Error("text color did not change the rendering")
	}
	if braille.StripANSI(plain) != braille.StripANSI(colored) {
		t.Error("text color changed the visible cells")
	}
}
