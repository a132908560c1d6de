package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zyclope0/supernovafit-sub004/internal/summary"
	"github.com/zyclope0/supernovafit-sub004/internal/tui/components/footer"
	"github.com/zyclope0/supernovafit-sub004/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	dashboardPage
)

type state struct {
	dashboard DashboardState
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	state          state
	deps           Deps
}

func New(deps Deps) Model {
	if deps.Builder == nil {
		deps.Builder = summary.New()
	}
	return Model{
		page:  splashPage,
		theme: theme.New(),
		deps:  deps,
		state: state{
			dashboard: DashboardState{Title: deps.Dataset.Name},
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(splashDuration, func(time.Time) tea.Msg {
			return SplashTickMsg{}
		}),
		buildSummaryCmd(m.deps),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.state.dashboard.Balance.Computed = false
			return m, buildSummaryCmd(m.deps)
		case "enter", "space":
			m.page = dashboardPage
		}

	case SplashTickMsg:
		m.page = dashboardPage

	case SummaryMsg:
		m.applySummary(msg)
	}

	return m, nil
}

func (m *Model) applySummary(msg SummaryMsg) {
	d := &m.state.dashboard
	d.Err = msg.Err
	if msg.Err != nil {
		return
	}

	s := msg.Summary
	goal := s.Trend.ProgressPct
	share := s.SportShare()
	rate := s.Trend.RatePerWeek

	d.Title = fmt.Sprintf("%s · %d days to %s", s.Name, s.Report.PeriodDays, s.Ref.Format(time.DateOnly))
	d.GoalPct = &goal
	d.SportShare = &share
	d.RatePerWeek = &rate
	d.Points = s.Points
	d.Balance.Computed = true
	d.Balance.Deficit = s.Report.IsDeficit
	d.Balance.Daily = s.Report.DailyEnergyBalance
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// splash uses pure black BG, everything else uses default dark
	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case splashPage:
		content = lipgloss.Place(
			m.viewportWidth,
			m.viewportHeight,
			lipgloss.Center,
			lipgloss.Center,
			m.SplashView(),
		)
	case dashboardPage:
		dashboard := lipgloss.Place(
			m.viewportWidth,
			m.viewportHeight,
			lipgloss.Center,
			lipgloss.Center,
			m.DashboardView(),
		)

		bar := footer.New(m.viewportWidth).WithStatus(m.BalanceView()).WithHints("r refresh", "q quit").Render()
		bottom := lipgloss.Place(
			m.viewportWidth,
			m.viewportHeight,
			lipgloss.Left,
			lipgloss.Bottom,
			bar,
		)

		content = overlayStrings(dashboard, bottom)
	}

	view.SetContent(content)
	return view
}

// overlayStrings keeps every non-blank rune of overlay on top of base.
// Both inputs are expected to be unstyled or styled per rune.
func overlayStrings(base, overlay string) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	result := make([]string, max(len(baseLines), len(overlayLines)))
	for i := range result {
		var baseLine, overlayLine string
		if i < len(baseLines) {
			baseLine = baseLines[i]
		}
		if i < len(overlayLines) {
			overlayLine = overlayLines[i]
		}
		if strings.TrimSpace(overlayLine) == "" {
			result[i] = baseLine
			continue
		}
		if strings.TrimSpace(baseLine) == "" {
			result[i] = overlayLine
			continue
		}

		baseRunes := []rune(baseLine)
		overlayRunes := []rune(overlayLine)
		merged := make([]rune, max(len(baseRunes), len(overlayRunes)))
		for j := range merged {
			baseChar, overlayChar := ' ', ' '
			if j < len(baseRunes) {
				baseChar = baseRunes[j]
			}
			if j < len(overlayRunes) {
				overlayChar = overlayRunes[j]
			}
			merged[j] = baseChar
			if overlayChar != ' ' {
				merged[j] = overlayChar
			}
		}
		result[i] = string(merged)
	}

	return strings.Join(result, "\n")
}
