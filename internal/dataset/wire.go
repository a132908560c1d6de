package dataset

// Wire shapes of a dataset file. Dates are YYYY-MM-DD; optional fields are
// pointers so that an absent value stays distinguishable from zero.

type fileJSON struct {
	Profile      *profileJSON      `json:"profile"`
	Workouts     []workoutJSON     `json:"workouts"`
	Meals        []mealJSON        `json:"meals"`
	Measurements []measurementJSON `json:"measurements"`
}

type profileJSON struct {
	Age           int     `json:"age"`
	WeightKG      float64 `json:"weight_kg"`
	HeightCM      float64 `json:"height_cm,omitempty"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`
}

type workoutJSON struct {
	ID                string   `json:"id,omitempty"`
	Date              string   `json:"date"`
	Type              string   `json:"type"`
	DurationMin       float64  `json:"duration_min"`
	AvgHeartRate      *int     `json:"avg_heart_rate,omitempty"`
	MaxHeartRate      *int     `json:"max_heart_rate,omitempty"`
	DistanceKM        *float64 `json:"distance_km,omitempty"`
	AvgSpeedKMH       *float64 `json:"avg_speed_kmh,omitempty"`
	PerceivedExertion *int     `json:"perceived_exertion,omitempty"`
	Calories          *int     `json:"calories,omitempty"`
}

type mealJSON struct {
	Date     string  `json:"date"`
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type measurementJSON struct {
	Date     string   `json:"date"`
	WeightKG *float64 `json:"weight_kg,omitempty"`
}
