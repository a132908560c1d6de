package calorie

// Confidence is a closed set; branch on it, not on Method text.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

func (c Confidence) String() string { return string(c) }

// Rank orders tiers by signal richness: heart rate > speed/distance > duration only.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

const (
	MethodHeartRate         = "heart-rate + MET + duration"
	MethodSpeed             = "speed + MET + duration"
	MethodDuration          = "MET + duration (estimate)"
	MethodPerceivedExertion = "perceived exertion + duration"
)

type Estimate struct {
	Calories   int        `json:"calories"`
	Method     string     `json:"method"`
	Confidence Confidence `json:"confidence"`
	MET        float64    `json:"met"`
}
