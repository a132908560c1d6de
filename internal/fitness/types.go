package fitness

import (
	"time"

	"github.com/google/uuid"
)

type UserProfile struct {
	Age      int     `json:"age"`
	WeightKG float64 `json:"weight_kg"`
	// HeightCM is optional; zero means unknown.
	HeightCM      float64       `json:"height_cm,omitempty"`
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}

type WorkoutRecord struct {
	ID                uuid.UUID    `json:"id"`
	Date              time.Time    `json:"date"`
	Type              ActivityType `json:"type"`
	DurationMin       float64      `json:"duration_min"`
	AvgHeartRate      *int         `json:"avg_heart_rate,omitempty"`
	MaxHeartRate      *int         `json:"max_heart_rate,omitempty"`
	DistanceKM        *float64     `json:"distance_km,omitempty"`
	AvgSpeedKMH       *float64     `json:"avg_speed_kmh,omitempty"`
	PerceivedExertion *int         `json:"perceived_exertion,omitempty"`
	Calories          *int         `json:"calories,omitempty"`
}

// WithCalories returns a copy of w carrying the given calories.
// Pointer fields other than Calories are shared with w.
func (w WorkoutRecord) WithCalories(kcal int) WorkoutRecord {
	w.Calories = &kcal
	return w
}

// MealRecord holds the aggregated macro totals of one meal.
type MealRecord struct {
	Date     time.Time `json:"date"`
	Kcal     float64   `json:"kcal"`
	ProteinG float64   `json:"protein_g"`
	CarbsG   float64   `json:"carbs_g"`
	FatG     float64   `json:"fat_g"`
}

type NutritionTotals struct {
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

func (n NutritionTotals) Add(m MealRecord) NutritionTotals {
	n.Kcal += m.Kcal
	n.ProteinG += m.ProteinG
	n.CarbsG += m.CarbsG
	n.FatG += m.FatG
	return n
}

// Measurement is one body-weight entry. WeightKG is nil when the entry
// was saved without a weight (e.g. only body-fat or photos were logged).
type Measurement struct {
	Date     time.Time `json:"date"`
	WeightKG *float64  `json:"weight_kg,omitempty"`
}

func (m Measurement) HasWeight() bool {
	return m.WeightKG != nil
}
