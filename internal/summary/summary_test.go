package summary

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/zyclope0/supernovafit-sub004/internal/dataset"
	"github.com/zyclope0/supernovafit-sub004/internal/energy"
	"github.com/zyclope0/supernovafit-sub004/internal/fitness"
	"github.com/zyclope0/supernovafit-sub004/internal/weight"
)

func day(d int) time.Time {
	return time.Date(2025, time.October, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func sample() dataset.Dataset {
	return dataset.Dataset{
		Name: "sample",
		Profile: &fitness.UserProfile{
			Age:           30,
			WeightKG:      70,
			Sex:           fitness.SexMale,
			ActivityLevel: fitness.ActivityModerate,
		},
		Workouts: []fitness.WorkoutRecord{
			{Date: day(9), Type: fitness.ActivityRunning, DurationMin: 90, Calories: ptr(1000)},
			{Date: day(10), Type: fitness.ActivityStrength, DurationMin: 45, Calories: ptr(300)},
			{Date: day(16), Type: fitness.ActivityYoga, DurationMin: 60},
		},
		Meals: []fitness.MealRecord{
			{Date: day(9), Kcal: 9999},
			{Date: day(10), Kcal: 2000},
			{Date: day(16), Kcal: 1500},
		},
		Measurements: []fitness.Measurement{
			{Date: day(1), WeightKG: ptr(72.0)},
			{Date: day(8)},
			{Date: day(15), WeightKG: ptr(70.5)},
		},
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	s, err := New().Build(sample(), 7, 2)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !s.Ref.Equal(day(16)) {
		t.Errorf("Ref = %v, want 2025-10-16", s.Ref)
	}
	if s.Estimated != 1 {
		t.Errorf("Estimated = %d, want 1", s.Estimated)
	}

	r := s.Report
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"BaseTDEE", float64(r.BaseTDEE), 2556},
		{"RawSportCalories", float64(r.RawSportCalories), 475},
		{"AdjustedSportCalories", float64(r.AdjustedSportCalories), 238},
		{"AdjustedTDEE", float64(r.AdjustedTDEE), 2590},
		{"PeriodStats.Kcal", r.PeriodStats.Kcal, 3500},
		{"EnergyBalance", r.EnergyBalance, -910},
		{"DailyEnergyBalance", r.DailyEnergyBalance, -2090},
		{"Trend.LossKG", s.Trend.LossKG, 1.5},
		{"Trend.ProgressPct", s.Trend.ProgressPct, 75},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if !r.IsDeficit {
		t.Error("IsDeficit = false, want true")
	}
	if s.Trend.GoalAchieved {
		t.Error("GoalAchieved = true, want false")
	}
	if len(s.Points) != 2 {
		t.Errorf("len(Points) = %d, want 2", len(s.Points))
	}
	if got, want := s.SportShare(), 34.0/2590*100; math.Abs(got-want) > 1e-9 {
		t.Errorf("SportShare() = %v, want %v", got, want)
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	ds := sample()
	if _, err := New().Build(ds, 7, 2); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if ds.Workouts[2].Calories != nil {
		t.Error("Build() filled calories on the caller's dataset")
	}
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	b := New()
	first, err := b.Build(sample(), 7, 2)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	second, err := b.Build(sample(), 7, 2)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if first.Report.AdjustedTDEE != second.Report.AdjustedTDEE || first.Trend != second.Trend {
		t.Errorf("Build() not idempotent: %+v vs %+v", first, second)
	}
}

func TestBuild_NoProfile(t *testing.T) {
	t.Parallel()

	ds := sample()
	ds.Profile = nil

	s, err := New().Build(ds, 7, 2)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if s.Estimated != 0 {
		t.Errorf("Estimated = %d, want 0 without a profile", s.Estimated)
	}
	if s.Report.BaseTDEE != energy.DefaultBaseTDEE || s.Report.AdjustedTDEE != energy.DefaultBaseTDEE {
		t.Errorf("TDEE = %d/%d, want defaults", s.Report.BaseTDEE, s.Report.AdjustedTDEE)
	}
	if s.Report.RawSportCalories != 300 {
		t.Errorf("RawSportCalories = %d, want 300", s.Report.RawSportCalories)
	}
}

func TestBuild_EmptyUsesClock(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	s, err := New(WithClock(func() time.Time { return now })).Build(dataset.Dataset{}, 7, 1)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !s.Ref.Equal(now) {
		t.Errorf("Ref = %v, want %v", s.Ref, now)
	}
	if s.Trend != (weight.Trend{}) {
		t.Errorf("Trend = %+v, want zero", s.Trend)
	}
}

func TestBuildWindow_Errors(t *testing.T) {
	t.Parallel()

	b := New()
	if _, err := b.BuildWindow(sample(), day(16), 0, 2, day(1), day(31)); !errors.Is(err, energy.ErrInvalidPeriod) {
		t.Errorf("BuildWindow() error = %v, want ErrInvalidPeriod", err)
	}
	if _, err := b.BuildWindow(sample(), day(16), 7, 2, day(31), day(1)); !errors.Is(err, weight.ErrInvalidWindow) {
		t.Errorf("BuildWindow() error = %v, want ErrInvalidWindow", err)
	}
}

func TestInputs(t *testing.T) {
	t.Parallel()

	anon := dataset.Dataset{Name: "anon", Meals: []fitness.MealRecord{{Date: day(3), Kcal: 1800}}}
	inputs := New().Inputs([]dataset.Dataset{sample(), anon}, 7)

	if len(inputs) != 2 {
		t.Fatalf("len(Inputs()) = %d, want 2", len(inputs))
	}
	if inputs[0].Name != "sample" || len(inputs[0].Workouts) != 2 || len(inputs[0].Meals) != 2 {
		t.Errorf("inputs[0] = %+v", inputs[0])
	}
	for _, w := range inputs[0].Workouts {
		if w.Calories == nil {
			t.Errorf("workout on %v left without calories", w.Date)
		}
	}
	if inputs[1].Profile != nil || len(inputs[1].Meals) != 1 || inputs[1].PeriodDays != 7 {
		t.Errorf("inputs[1] = %+v", inputs[1])
	}
}
