// Package calorie picks an estimation strategy from the signals a workout carries.
package calorie

import (
	"log/slog"

	"github.com/zyclope0/supernovafit-sub004/internal/fitness"
	"github.com/zyclope0/supernovafit-sub004/internal/metabolic"
	"github.com/zyclope0/supernovafit-sub004/internal/xslog"
)

type Engine struct {
	estimator *metabolic.Estimator
	logger    *slog.Logger
}

type Option func(*Engine)

func WithEstimator(e *metabolic.Estimator) Option {
	return func(eng *Engine) {
		eng.estimator = e
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(eng *Engine) {
		eng.logger = l
	}
}

func New(opts ...Option) *Engine {
	eng := &Engine{
		estimator: metabolic.Default(),
		logger:    xslog.Discard(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

var defaultEngine = New()

// Default returns an engine using the default estimator and a discard logger.
func Default() *Engine { return defaultEngine }

// Estimate applies the first strategy whose signals are present:
//
//  1. average heart rate, age and duration: heart-rate zone adjustment (high)
//  2. speed or distance and duration on a speed-adjustable type: speed adjustment (medium)
//  3. otherwise: base MET and duration (low)
//
// The order is a contract; do not reorder.
func (e *Engine) Estimate(w fitness.WorkoutRecord, p fitness.UserProfile) Estimate {
	typ := metabolic.NormalizeType(w.Type)
	entry := metabolic.BaseMET(typ)
	hasDuration := w.DurationMin > 0

	var est Estimate
	switch {
	case hasDuration && w.AvgHeartRate != nil && *w.AvgHeartRate > 0 && p.Age > 0:
		maxHR := metabolic.MaxHeartRate(p.Age)
		pct := metabolic.HeartRateZonePercentage(float64(*w.AvgHeartRate), float64(maxHR))
		est.MET = e.estimator.AdjustByHeartRateZone(entry.Base, pct)
		est.Method = MethodHeartRate
		est.Confidence = ConfidenceHigh
	case hasDuration && entry.SpeedAdjustable && speedOf(w) > 0:
		est.MET = metabolic.AdjustBySpeed(entry.Base, speedOf(w), typ)
		est.Method = MethodSpeed
		est.Confidence = ConfidenceMedium
	default:
		est.MET = entry.Base
		est.Method = MethodDuration
		est.Confidence = ConfidenceLow
	}
	est.Calories = e.estimator.CaloriesFromMET(est.MET, p.WeightKG, w.DurationMin, p.Sex)

	e.logger.Debug("estimated workout calories",
		xslog.EstimateGroup(string(typ), est.MET, est.Calories, est.Method, est.Confidence.String()))
	return est
}

// EstimateWorkout falls back to perceived exertion when only duration is
// known and the workout carries an RPE.
func (e *Engine) EstimateWorkout(w fitness.WorkoutRecord, p fitness.UserProfile) Estimate {
	est := e.Estimate(w, p)
	if est.Confidence != ConfidenceLow || w.PerceivedExertion == nil || w.DurationMin <= 0 {
		return est
	}
	return e.EstimateFromPerceivedExertion(w.DurationMin, float64(*w.PerceivedExertion), p.WeightKG, p.Sex)
}

// FillCalories returns a copy of workouts where missing calories are estimated.
// Workouts that already carry calories are left as logged.
func (e *Engine) FillCalories(workouts []fitness.WorkoutRecord, p fitness.UserProfile) []fitness.WorkoutRecord {
	out := make([]fitness.WorkoutRecord, len(workouts))
	for i, w := range workouts {
		if w.Calories != nil {
			out[i] = w
			continue
		}
		out[i] = w.WithCalories(e.EstimateWorkout(w, p).Calories)
	}
	return out
}

// speedOf prefers the recorded average speed and derives it from distance otherwise.
func speedOf(w fitness.WorkoutRecord) float64 {
	if w.AvgSpeedKMH != nil && *w.AvgSpeedKMH > 0 {
		return *w.AvgSpeedKMH
	}
	if w.DistanceKM != nil {
		return metabolic.SpeedFromDistance(*w.DistanceKM, w.DurationMin)
	}
	return 0
}
