package fitness

import "fmt"

const (
	maxAge       = 130
	maxHeartRate = 250
	minRPE       = 1
	maxRPE       = 10
)

func (p UserProfile) Validate() map[string]string {
	errs := make(map[string]string)
	if p.Age < 0 || p.Age > maxAge {
		errs["age"] = fmt.Sprintf("must be between 0 and %d", maxAge)
	}
	if p.WeightKG <= 0 {
		errs["weight_kg"] = "must be positive"
	}
	if p.HeightCM < 0 {
		errs["height_cm"] = "must not be negative"
	}
	if p.Sex != SexMale && p.Sex != SexFemale {
		errs["sex"] = `must be "M" or "F"`
	}
	if !p.ActivityLevel.Valid() {
		errs["activity_level"] = "unknown activity level"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate reports structurally impossible values. Absent optional fields
// and unknown activity types are not errors.
func (w WorkoutRecord) Validate() map[string]string {
	errs := make(map[string]string)
	if w.DurationMin < 0 {
		errs["duration_min"] = "must not be negative"
	}
	if w.AvgHeartRate != nil && (*w.AvgHeartRate <= 0 || *w.AvgHeartRate > maxHeartRate) {
		errs["avg_heart_rate"] = fmt.Sprintf("must be between 1 and %d", maxHeartRate)
	}
	if w.MaxHeartRate != nil && (*w.MaxHeartRate <= 0 || *w.MaxHeartRate > maxHeartRate) {
		errs["max_heart_rate"] = fmt.Sprintf("must be between 1 and %d", maxHeartRate)
	}
	if w.DistanceKM != nil && *w.DistanceKM < 0 {
		errs["distance_km"] = "must not be negative"
	}
	if w.AvgSpeedKMH != nil && *w.AvgSpeedKMH < 0 {
		errs["avg_speed_kmh"] = "must not be negative"
	}
	if w.PerceivedExertion != nil && (*w.PerceivedExertion < minRPE || *w.PerceivedExertion > maxRPE) {
		errs["perceived_exertion"] = fmt.Sprintf("must be between %d and %d", minRPE, maxRPE)
	}
	if w.Calories != nil && *w.Calories < 0 {
		errs["calories"] = "must not be negative"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (m MealRecord) Validate() map[string]string {
	errs := make(map[string]string)
	if m.Kcal < 0 {
		errs["kcal"] = "must not be negative"
	}
	if m.ProteinG < 0 {
		errs["protein_g"] = "must not be negative"
	}
	if m.CarbsG < 0 {
		errs["carbs_g"] = "must not be negative"
	}
	if m.FatG < 0 {
		errs["fat_g"] = "must not be negative"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (m Measurement) Validate() map[string]string {
	if m.WeightKG != nil && *m.WeightKG <= 0 {
		return map[string]string{"weight_kg": "must be positive when present"}
	}
	return nil
}
