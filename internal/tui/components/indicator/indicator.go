package indicator

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/zyclope0/supernovafit-sub004/internal/tui/theme"
)

const statusDot = "●"

// Balance shows whether the period ended in a caloric deficit.
type Balance struct {
	Computed bool
	Deficit  bool
	// Daily is the average daily balance in kcal; negative means deficit.
	Daily float64
}

func (b Balance) Render() string {
	if !b.Computed {
		return lipgloss.NewStyle().
			Foreground(theme.ColorBgLight).
			Render(statusDot + " computing...")
	}

	if b.Deficit {
		return lipgloss.NewStyle().
			Foreground(theme.ColorDeficit).
			Render(fmt.Sprintf("%s deficit %.0f kcal/day", statusDot, b.Daily))
	}

	return lipgloss.NewStyle().
		Foreground(theme.ColorSurplus).
		Render(fmt.Sprintf("%s surplus +%.0f kcal/day", statusDot, b.Daily))
}
