//go:build !release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/zyclope0/supernovafit-sub004/internal/tui/theme"
	"github.com/zyclope0/supernovafit-sub004/internal/version"
)

// dev builds show the full pseudo-version so dirty trees are obvious.
func versionLabel() string {
	return lipgloss.NewStyle().Foreground(theme.ColorDim).Italic(true).Render(version.Get())
}
