package calorie

import "github.com/zyclope0/supernovafit-sub004/internal/fitness"

const (
	minRPE = 1
	maxRPE = 10
)

// PerceivedExertionMET maps a 1-10 RPE onto MET in three linear segments:
// [1,3] -> [2,4.1], (3,6] -> [4,7.9], (6,10] -> [8,14.5].
func PerceivedExertionMET(rpe float64) float64 {
	rpe = max(minRPE, min(rpe, maxRPE))
	switch {
	case rpe <= 3:
		return 2 + (rpe-1)*(4.1-2)/2
	case rpe <= 6:
		return 4 + (rpe-3)*(7.9-4)/3
	default:
		return 8 + (rpe-6)*(14.5-8)/4
	}
}

// EstimateFromPerceivedExertion is meant for workouts where no telemetry
// based method applies.
func (e *Engine) EstimateFromPerceivedExertion(durationMin, rpe, weightKG float64, sex fitness.Sex) Estimate {
	met := PerceivedExertionMET(rpe)
	return Estimate{
		Calories:   e.estimator.CaloriesFromMET(met, weightKG, durationMin, sex),
		Method:     MethodPerceivedExertion,
		Confidence: ConfidenceLow,
		MET:        met,
	}
}
