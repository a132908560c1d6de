// Package energy combines a profile, workouts and meals into an energy balance.
package energy

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/zyclope0/supernovafit-sub004/internal/fitness"
	"github.com/zyclope0/supernovafit-sub004/internal/metabolic"
	"github.com/zyclope0/supernovafit-sub004/internal/xslog"
)

var ErrInvalidPeriod = errors.New("period days must be positive")

type Aggregator struct {
	logger      *slog.Logger
	concurrency int
}

type Option func(*Aggregator)

func WithLogger(l *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = l
	}
}

// WithConcurrency bounds AggregateBatch. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

const defaultConcurrency = 4

func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		logger:      xslog.Discard(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate builds the report for one period. Meals are expected to be
// already windowed by the caller. Workout calories are taken as logged;
// a nil Calories counts as zero and stays nil in AdjustedTrainings.
func (a *Aggregator) Aggregate(profile *fitness.UserProfile, meals []fitness.MealRecord, workouts []fitness.WorkoutRecord, periodDays int) (Report, error) {
	if periodDays <= 0 {
		return Report{}, fmt.Errorf("aggregate %d days: %w", periodDays, ErrInvalidPeriod)
	}

	r := Report{
		BaseTDEE:         DefaultBaseTDEE,
		CorrectionFactor: DefaultCorrectionFactor,
		PeriodDays:       periodDays,
	}
	if profile != nil {
		r.BaseTDEE = metabolic.TDEE(*profile)
		r.CorrectionFactor = CorrectionFactor(profile.ActivityLevel)
	}

	r.AdjustedTrainings = make([]fitness.WorkoutRecord, len(workouts))
	for i, w := range workouts {
		r.AdjustedTrainings[i] = w
		if w.Calories == nil {
			continue
		}
		r.RawSportCalories += *w.Calories
		r.AdjustedTrainings[i] = w.WithCalories(roundNonNegative(float64(*w.Calories) * r.CorrectionFactor))
	}

	r.AvgDailySportCalories = float64(r.RawSportCalories) / float64(periodDays)
	r.AdjustedSportCalories = roundNonNegative(float64(r.RawSportCalories) * r.CorrectionFactor)

	r.AdjustedTDEE = r.BaseTDEE
	if profile != nil {
		r.AdjustedTDEE = roundNonNegative(float64(r.BaseTDEE) + r.AvgDailySportCalories*r.CorrectionFactor)
	}

	for _, m := range meals {
		r.PeriodStats = r.PeriodStats.Add(m)
	}

	r.EnergyBalance = r.PeriodStats.Kcal - float64(r.AdjustedTDEE)
	r.DailyEnergyBalance = r.PeriodStats.Kcal/float64(periodDays) - float64(r.AdjustedTDEE)
	r.IsDeficit = r.EnergyBalance < 0

	a.logger.Debug("aggregated energy balance",
		xslog.PeriodDays(periodDays),
		xslog.Count(len(workouts)),
		xslog.BalanceGroup(r.BaseTDEE, r.AdjustedTDEE, r.CorrectionFactor, r.RawSportCalories, r.EnergyBalance))
	return r, nil
}

func roundNonNegative(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}

var defaultAggregator = New()

// Aggregate uses a default aggregator.
func Aggregate(profile *fitness.UserProfile, meals []fitness.MealRecord, workouts []fitness.WorkoutRecord, periodDays int) (Report, error) {
	return defaultAggregator.Aggregate(profile, meals, workouts, periodDays)
}
