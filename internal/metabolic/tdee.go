package metabolic

import (
	"math"

	"github.com/zyclope0/supernovafit-sub004/internal/fitness"
)

// activityMultipliers maps activity level to its TDEE multiplier.
var activityMultipliers = map[fitness.ActivityLevel]float64{
	fitness.ActivitySedentary:   1.2,
	fitness.ActivityLight:       1.375,
	fitness.ActivityModerate:    1.55,
	fitness.ActivityIntense:     1.725,
	fitness.ActivityVeryIntense: 1.9,
}

// reference heights used when the profile has none
const (
	referenceHeightMaleCM   = 175
	referenceHeightFemaleCM = 162
)

// ActivityMultiplier falls back to the sedentary multiplier for unknown levels.
func ActivityMultiplier(level fitness.ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return activityMultipliers[fitness.ActivitySedentary]
}

// BMR uses Mifflin-St Jeor: 10w + 6.25h - 5a, +5 for men and -161 for women.
func BMR(p fitness.UserProfile) float64 {
	height := p.HeightCM
	if height <= 0 {
		height = referenceHeightMaleCM
		if p.Sex.IsFemale() {
			height = referenceHeightFemaleCM
		}
	}
	bmr := 10*p.WeightKG + 6.25*height - 5*float64(p.Age)
	if p.Sex.IsFemale() {
		return bmr - 161
	}
	return bmr + 5
}

// TDEE is BMR times the activity multiplier, rounded and never negative.
func TDEE(p fitness.UserProfile) int {
	tdee := BMR(p) * ActivityMultiplier(p.ActivityLevel)
	if tdee <= 0 {
		return 0
	}
	return int(math.Round(tdee))
}
