package energy

import "github.com/zyclope0/supernovafit-sub004/internal/fitness"

const (
	// DefaultBaseTDEE is used when no profile is available.
	DefaultBaseTDEE = 2000
	// DefaultCorrectionFactor is used when no profile is available.
	DefaultCorrectionFactor = 0.7
)

// correctionFactors is the share of logged sport calories counted on top of
// the expenditure already implied by the declared activity level. The more
// active the declared level, the more of the sport is already in the baseline.
var correctionFactors = map[fitness.ActivityLevel]float64{
	fitness.ActivitySedentary:   1.0,
	fitness.ActivityLight:       0.8,
	fitness.ActivityModerate:    0.5,
	fitness.ActivityIntense:     0.3,
	fitness.ActivityVeryIntense: 0.2,
}

// CorrectionFactor derives only from the activity level and lies in (0, 1].
func CorrectionFactor(level fitness.ActivityLevel) float64 {
	if f, ok := correctionFactors[level]; ok {
		return f
	}
	return DefaultCorrectionFactor
}
