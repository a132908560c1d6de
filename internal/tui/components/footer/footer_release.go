//go:build release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/zyclope0/supernovafit-sub004/internal/tui/theme"
	"github.com/zyclope0/supernovafit-sub004/internal/version"
)

func versionLabel() string {
	return lipgloss.NewStyle().Foreground(theme.ColorDim).Render("v" + version.Short(version.Get()))
}
