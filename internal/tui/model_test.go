package tui

import (
	"errors"
	"image/color"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zyclope0/supernovafit-sub004/internal/dataset"
	"github.com/zyclope0/supernovafit-sub004/internal/energy"
	"github.com/zyclope0/supernovafit-sub004/internal/fitness"
	"github.com/zyclope0/supernovafit-sub004/internal/summary"
	"github.com/zyclope0/supernovafit-sub004/internal/tui/components/braille"
	"github.com/zyclope0/supernovafit-sub004/internal/tui/theme"
	"github.com/zyclope0/supernovafit-sub004/internal/weight"
)

func TestOverlayStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    string
		overlay string
		want    string
	}{
		{"blank overlay keeps base", "abc\ndef", "   \n   ", "abc\ndef"},
		{"overlay wins on non-space", "abc\ndef", "   \n  X", "abc\ndeX"},
		{"blank base takes overlay", "   \nabc", "xyz\n   ", "xyz\nabc"},
		{"overlay longer than base", "ab", "   Z", "ab Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := overlayStrings(tt.base, tt.overlay); got != tt.want {
				t.Errorf("overlayStrings() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestThemeGoal(t *testing.T) {
	t.Parallel()

	th := theme.New()
	v := func(f float64) *float64 { return &f }
	if th.Goal(nil) == th.Goal(v(80)) {
		t.Error("no data should not share the high color")
	}
	if th.Goal(v(80)) == th.Goal(v(50)) || th.Goal(v(50)) == th.Goal(v(10)) {
		t.Error("bands should have distinct colors")
	}
}

func TestRateTextColor(t *testing.T) {
	t.Parallel()

	v := func(f float64) *float64 { return &f }
	tests := []struct {
		name string
		rate *float64
		want color.Color
	}{
		{"no data", nil, theme.ColorWhite},
		{"losing", v(0.5), theme.ColorWhite},
		{"flat", v(0), theme.ColorWhite},
		{"gaining", v(-0.25), theme.ColorSurplus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := rateTextColor(tt.rate); got != tt.want {
				t.Errorf("rateTextColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdate_Summary(t *testing.T) {
	t.Parallel()

	m := New(Deps{Dataset: dataset.Dataset{Name: "alice"}, PeriodDays: 7, GoalKG: 2})

	s := summary.Summary{
		Name: "alice",
		Ref:  time.Date(2025, time.October, 16, 0, 0, 0, 0, time.UTC),
		Report: energy.Report{
			BaseTDEE:           2000,
			AdjustedTDEE:       2500,
			PeriodDays:         7,
			IsDeficit:          true,
			DailyEnergyBalance: -300,
		},
		Trend:  weight.Trend{ProgressPct: 75, RatePerWeek: 0.5},
		Points: []weight.Point{{Date: time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), WeightKG: 80}},
	}
	m.Update(SummaryMsg{Summary: s})

	d := m.state.dashboard
	if d.GoalPct == nil || *d.GoalPct != 75 {
		t.Errorf("GoalPct = %v, want 75", d.GoalPct)
	}
	if d.SportShare == nil || *d.SportShare != 20 {
		t.Errorf("SportShare = %v, want 20", d.SportShare)
	}
	if d.RatePerWeek == nil || *d.RatePerWeek != 0.5 {
		t.Errorf("RatePerWeek = %v, want 0.5", d.RatePerWeek)
	}
	if !d.Balance.Computed || !d.Balance.Deficit {
		t.Errorf("Balance = %+v, want computed deficit", d.Balance)
	}
	if !strings.Contains(d.Title, "2025-10-16") {
		t.Errorf("Title = %q", d.Title)
	}

	m.Update(SplashTickMsg{})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	out := braille.StripANSI(m.DashboardView())
	for _, want := range []string{"GOAL", "SPORT", "KG/WEEK", "75%", "20%", "0.50", "WEIGHT"} {
		if !strings.Contains(out, want) {
			t.Errorf("DashboardView() missing %q", want)
		}
	}
}

func TestUpdate_SummaryError(t *testing.T) {
	t.Parallel()

	m := New(Deps{})
	m.Update(SummaryMsg{Err: errors.New("window end precedes start")})

	if m.state.dashboard.GoalPct != nil {
		t.Error("GoalPct set despite error")
	}
	if out := braille.StripANSI(m.DashboardView()); !strings.Contains(out, "window end precedes start") {
		t.Errorf("DashboardView() does not show the error:\n%s", out)
	}
}

func TestBuildSummaryCmd(t *testing.T) {
	t.Parallel()

	kg := 80.0
	deps := Deps{
		Builder: summary.New(),
		Dataset: dataset.Dataset{
			Name:         "bob",
			Measurements: []fitness.Measurement{{Date: time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC), WeightKG: &kg}},
		},
		PeriodDays: 7,
		GoalKG:     1,
	}

	msg, ok := buildSummaryCmd(deps)().(SummaryMsg)
	if !ok {
		t.Fatal("command did not return a SummaryMsg")
	}
	if msg.Err != nil {
		t.Fatalf("Err = %v", msg.Err)
	}
	if msg.Summary.Name != "bob" || len(msg.Summary.Points) != 1 {
		t.Errorf("Summary = %+v", msg.Summary)
	}
}
