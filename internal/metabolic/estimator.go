package metabolic

import (
	"math"

	"github.com/zyclope0/supernovafit-sub004/internal/fitness"
)

const (
	maxHRBase      = 220
	minZonePercent = 50
	maxZonePercent = 100
)

// Estimator applies the MET adjustments with a fixed set of Constants.
// It is immutable and safe for concurrent use.
type Estimator struct {
	c Constants
}

func New(opts ...Option) *Estimator {
	e := &Estimator{c: DefaultConstants()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEstimator = New()

// Default returns the estimator built from DefaultConstants.
func Default() *Estimator { return defaultEstimator }

func (e *Estimator) Constants() Constants { return e.c.clone() }

func MaxHeartRate(age int) int {
	return int(math.Round(float64(maxHRBase - age)))
}

// HeartRateZonePercentage is clamped to [50, 100] so a low or degenerate
// ratio cannot collapse the adjusted MET.
func HeartRateZonePercentage(avgHR, maxHR float64) float64 {
	pct := avgHR / maxHR * 100
	if maxHR <= 0 || math.IsNaN(pct) {
		return minZonePercent
	}
	return clamp(pct, minZonePercent, maxZonePercent)
}

// AdjustByHeartRateZone is a step function over the zone bands, not an interpolation.
func (e *Estimator) AdjustByHeartRateZone(baseMET, hrPercent float64) float64 {
	for _, band := range e.c.Zones {
		if hrPercent < band.UpperPct {
			return baseMET * band.Multiplier
		}
	}
	return baseMET * e.c.TopMultiplier
}

// AdjustBySpeed raises MET above the activity's reference pace and clamps
// to the table bounds. Types without a speed model are returned unchanged.
func AdjustBySpeed(baseMET, speedKMH float64, t fitness.ActivityType) float64 {
	t = NormalizeType(t)
	entry := metTable[t]
	model, ok := speedModels[t]
	if !entry.SpeedAdjustable || !ok || speedKMH <= 0 {
		return baseMET
	}
	adjusted := baseMET + max(0, speedKMH-model.referenceKMH)*model.perKMH
	return clamp(adjusted, entry.Min, entry.Max)
}

// SpeedFromDistance returns km/h, or 0 when either input is missing.
func SpeedFromDistance(distanceKM, durationMin float64) float64 {
	if distanceKM <= 0 || durationMin <= 0 {
		return 0
	}
	return distanceKM / (durationMin / 60)
}

func (e *Estimator) GenderFactor(sex fitness.Sex) float64 {
	if sex.IsFemale() {
		return e.c.FemaleFactor
	}
	return e.c.MaleFactor
}

// CaloriesFromMET returns round(met * kg * hours * genderFactor), never negative.
// The gender factor is an approximation, not a precision claim.
func (e *Estimator) CaloriesFromMET(met, weightKG, durationMin float64, sex fitness.Sex) int {
	kcal := met * weightKG * (durationMin / 60) * e.GenderFactor(sex)
	if kcal <= 0 || math.IsNaN(kcal) {
		return 0
	}
	return int(math.Round(kcal))
}

func AdjustByHeartRateZone(baseMET, hrPercent float64) float64 {
	return defaultEstimator.AdjustByHeartRateZone(baseMET, hrPercent)
}

func CaloriesFromMET(met, weightKG, durationMin float64, sex fitness.Sex) int {
	return defaultEstimator.CaloriesFromMET(met, weightKG, durationMin, sex)
}
