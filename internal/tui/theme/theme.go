package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme groups the styles shared by the dashboard and the CLI text reports.
type Theme struct {
	background color.Color
	heading    lipgloss.Style
	label      lipgloss.Style
	errText    lipgloss.Style
	deficit    lipgloss.Style
	surplus    lipgloss.Style
}

func New() Theme {
	return Theme{
		background: ColorBgDark,
		heading:    lipgloss.NewStyle().Foreground(ColorAccent).Bold(true),
		label:      lipgloss.NewStyle().Foreground(ColorDim),
		errText:    lipgloss.NewStyle().Foreground(ColorGoalLow),
		deficit:    lipgloss.NewStyle().Foreground(ColorDeficit).Bold(true),
		surplus:    lipgloss.NewStyle().Foreground(ColorSurplus).Bold(true),
	}
}

func (t Theme) Background() color.Color { return t.background }

func (t Theme) Heading() lipgloss.Style { return t.heading }

func (t Theme) Label() lipgloss.Style { return t.label }

func (t Theme) Error() lipgloss.Style { return t.errText }

// Balance picks the style for an energy balance: green when the period ran
// a deficit, orange otherwise.
func (t Theme) Balance(deficit bool) lipgloss.Style {
	if deficit {
		return t.deficit
	}
	return t.surplus
}

// Goal bands weight-goal progress into thirds. A nil pct means no
// measurements were available.
func (t Theme) Goal(pct *float64) color.Color {
	if pct == nil {
		return ColorNeutralGoal
	}

	switch p := *pct; {
	case p >= 67:
		return ColorGoalHigh
	case p >= 34:
		return ColorGoalMedium
	default:
		return ColorGoalLow
	}
}
