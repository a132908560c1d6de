package tui

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/zyclope0/supernovafit-sub004/internal/tui/components/chart"
	"github.com/zyclope0/supernovafit-sub004/internal/tui/components/gauge"
	"github.com/zyclope0/supernovafit-sub004/internal/tui/components/indicator"
	"github.com/zyclope0/supernovafit-sub004/internal/tui/theme"
	"github.com/zyclope0/supernovafit-sub004/internal/weight"
)

// rateScale is the kg/week shown as a full ring.
const rateScale = 1.0

type DashboardState struct {
	Balance indicator.Balance

	Title       string
	GoalPct     *float64 // 0-100%
	SportShare  *float64 // 0-100%
	RatePerWeek *float64 // kg/week
	Points      []weight.Point
	Err         error
}

func (m *Model) DashboardView() string {
	state := m.state.dashboard

	var (
		goalGauge = gauge.New(
			state.GoalPct,
			100,
			"GOAL",
			m.theme.Goal(state.GoalPct),
			gauge.WithFormat(gauge.Percent),
		)

		sportGauge = gauge.New(
			state.SportShare,
			100,
			"SPORT",
			theme.ColorSport,
			gauge.WithFormat(gauge.Percent),
		)

		rateGauge = gauge.New(
			state.RatePerWeek,
			rateScale,
			"KG/WEEK",
			theme.ColorRate,
			gauge.WithFormat(func(v float64) string { return fmt.Sprintf("%.2f", v) }),
			gauge.WithTextColor(rateTextColor(state.RatePerWeek)),
		)
	)

	gaugeSpacing := "    "
	gaugesRow := lipgloss.JoinHorizontal(
		lipgloss.Top,
		goalGauge.Render(),
		gaugeSpacing,
		sportGauge.Render(),
		gaugeSpacing,
		rateGauge.Render(),
	)

	cols := max(lipgloss.Width(gaugesRow)-8, 0)
	weightChart := chart.New(state.Points, cols, 4).Render()

	header := m.theme.Heading().Render(state.Title)
	if state.Err != nil {
		header += "\n" + m.theme.Error().Render(state.Err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Center, header, "", gaugesRow, "", weightChart)
}

func (m *Model) BalanceView() string {
	return m.state.dashboard.Balance.Render()
}

// rateTextColor flags a weight gain, which the ring alone cannot show.
func rateTextColor(rate *float64) color.Color {
	if rate != nil && *rate < 0 {
		return theme.ColorSurplus
	}
	return theme.ColorWhite
}
