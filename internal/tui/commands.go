package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/zyclope0/supernovafit-sub004/internal/xslog"
)

func buildSummaryCmd(deps Deps) tea.Cmd {
	return func() tea.Msg {
		s, err := deps.Builder.Build(deps.Dataset, deps.PeriodDays, deps.GoalKG)
		if deps.Logger == nil {
			return SummaryMsg{Summary: s, Err: err}
		}

		logger := deps.Logger.With(xslog.Dataset(deps.Dataset.Name), xslog.PeriodDays(deps.PeriodDays))
		if err != nil {
			logger.Error("failed to build summary", xslog.Error(err))
		} else {
			logger.Debug("summary built",
				xslog.Start(s.Start),
				xslog.End(s.End),
				slog.Int("estimated", s.Estimated))
		}
		return SummaryMsg{Summary: s, Err: err}
	}
}
