// Package summary runs the whole engine over one dataset: estimate missing
// workout calories, aggregate the energy balance and analyze the weight trend.
package summary

import (
	"fmt"
	"time"

	"github.com/zyclope0/supernovafit-sub004/internal/calorie"
	"github.com/zyclope0/supernovafit-sub004/internal/dataset"
	"github.com/zyclope0/supernovafit-sub004/internal/energy"
	"github.com/zyclope0/supernovafit-sub004/internal/weight"
)

type Summary struct {
	Name   string        `json:"name"`
	Ref    time.Time     `json:"ref"`
	Report energy.Report `json:"report"`
	// Estimated counts the workouts whose calories were filled in.
	Estimated int            `json:"estimated"`
	Start     time.Time      `json:"trend_start"`
	End       time.Time      `json:"trend_end"`
	Trend     weight.Trend   `json:"trend"`
	Points    []weight.Point `json:"-"`
}

type Builder struct {
	engine     *calorie.Engine
	aggregator *energy.Aggregator
	now        func() time.Time
}

type Option func(*Builder)

func WithEngine(e *calorie.Engine) Option {
	return func(b *Builder) {
		b.engine = e
	}
}

func WithAggregator(a *energy.Aggregator) Option {
	return func(b *Builder) {
		b.aggregator = a
	}
}

// WithClock sets the reference date used for empty datasets.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

func New(opts ...Option) *Builder {
	b := &Builder{
		engine:     calorie.Default(),
		aggregator: energy.New(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build summarizes the periodDays ending on the dataset's latest record and the
// weight trend over that record's calendar month.
func (b *Builder) Build(ds dataset.Dataset, periodDays int, goalKG float64) (Summary, error) {
	ref := ds.LatestDate()
	if ref.IsZero() {
		ref = b.now().UTC()
	}
	start, end := weight.MonthWindow(ref)
	return b.BuildWindow(ds, ref, periodDays, goalKG, start, end)
}

// BuildWindow is Build with an explicit reference date and trend window.
func (b *Builder) BuildWindow(ds dataset.Dataset, ref time.Time, periodDays int, goalKG float64, start, end time.Time) (Summary, error) {
	s := Summary{Name: ds.Name, Ref: ref, Start: start, End: end}

	if periodDays <= 0 {
		return Summary{}, fmt.Errorf("summary of %q: %w", ds.Name, energy.ErrInvalidPeriod)
	}
	in, estimated := b.Input(ds, ref, periodDays)
	s.Estimated = estimated

	report, err := b.aggregator.Aggregate(in.Profile, in.Meals, in.Workouts, in.PeriodDays)
	if err != nil {
		return Summary{}, fmt.Errorf("summary of %q: %w", ds.Name, err)
	}
	s.Report = report

	trend, err := weight.Analyze(ds.Measurements, goalKG, start, end)
	if err != nil {
		return Summary{}, fmt.Errorf("summary of %q: %w", ds.Name, err)
	}
	s.Trend = trend
	s.Points = weight.Within(ds.Measurements, time.Time{}, ref)

	return s, nil
}

// Input windows ds to the periodDays ending on ref and estimates the calories
// of workouts logged without them. It also reports how many were estimated.
// Without a profile nothing can be estimated and workouts are passed as logged.
func (b *Builder) Input(ds dataset.Dataset, ref time.Time, periodDays int) (energy.Input, int) {
	period := ds.Period(ref, periodDays)
	in := period.Input(periodDays)
	if ds.Profile == nil {
		return in, 0
	}

	var estimated int
	for _, w := range period.Workouts {
		if w.Calories == nil {
			estimated++
		}
	}
	in.Workouts = b.engine.FillCalories(period.Workouts, *ds.Profile)
	return in, estimated
}

// Inputs prepares every dataset for energy.Aggregator.AggregateBatch, each
// windowed on its own latest record.
func (b *Builder) Inputs(datasets []dataset.Dataset, periodDays int) []energy.Input {
	inputs := make([]energy.Input, len(datasets))
	for i, ds := range datasets {
		ref := ds.LatestDate()
		if ref.IsZero() {
			ref = b.now().UTC()
		}
		inputs[i], _ = b.Input(ds, ref, periodDays)
	}
	return inputs
}

// SportShare is the part of the adjusted TDEE that comes from training, in percent.
func (s Summary) SportShare() float64 {
	if s.Report.AdjustedTDEE <= 0 {
		return 0
	}
	return float64(s.Report.AdjustedTDEE-s.Report.BaseTDEE) / float64(s.Report.AdjustedTDEE) * 100
}
