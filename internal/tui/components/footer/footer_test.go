package footer

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/zyclope0/supernovafit-sub004/internal/tui/components/braille"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		footer     Footer
		wantStatus string
		wantSuffix string
	}{
		{
			name:       "hints only",
			footer:     New(60).WithHints("q quit"),
			wantSuffix: "q quit",
		},
		{
			name:       "status and hints",
			footer:     New(80).WithStatus("-300 kcal/day").WithHints("r refresh", "q quit"),
			wantStatus: "-300 kcal/day",
			wantSuffix: "r refresh · q quit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := tt.footer.Render()
			if got, want := lipgloss.Width(out), tt.footer.width; got != want {
				t.Errorf("width = %d, want %d", got, want)
			}
			plain := braille.StripANSI(out)
			if !strings.HasSuffix(strings.TrimRight(plain, " "), tt.wantSuffix) {
				t.Errorf("hints not flush right: %q", plain)
			}
			if !strings.Contains(plain, tt.wantStatus) {
				t.Errorf("status %q missing from %q", tt.wantStatus, plain)
			}
		})
	}
}
