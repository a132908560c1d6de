package weight

import (
	"time"

	"github.com/zyclope0/supernovafit-sub004/internal/fitness"
)

const daysPerWeek = 7

// Trend bundles every metric of one window.
type Trend struct {
	// LossKG is positive for a loss and negative for a gain.
	LossKG       float64 `json:"loss_kg"`
	ProgressPct  float64 `json:"progress_pct"`
	GoalAchieved bool    `json:"goal_achieved"`
	RatePerWeek  float64 `json:"rate_kg_per_week"`
}

// MonthLoss is the loss over the calendar month containing ref.
func MonthLoss(ms []fitness.Measurement, ref time.Time) float64 {
	start, end := MonthWindow(ref)
	return lossWithin(ms, start, end)
}

func Loss(ms []fitness.Measurement, start, end time.Time) (float64, error) {
	if err := checkWindow(start, end); err != nil {
		return 0, err
	}
	return lossWithin(ms, start, end), nil
}

// LossProgress is loss/goal as a percentage clamped to [0, 100].
// A non-positive goal yields 0.
func LossProgress(ms []fitness.Measurement, goalKG float64, start, end time.Time) (float64, error) {
	loss, err := Loss(ms, start, end)
	if err != nil {
		return 0, err
	}
	return progress(loss, goalKG), nil
}

func GoalAchieved(ms []fitness.Measurement, goalKG float64, start, end time.Time) (bool, error) {
	loss, err := Loss(ms, start, end)
	if err != nil {
		return false, err
	}
	return loss >= goalKG, nil
}

// LossRate is kg per week. Windows shorter than a week yield 0.
func LossRate(ms []fitness.Measurement, start, end time.Time) (float64, error) {
	loss, err := Loss(ms, start, end)
	if err != nil {
		return 0, err
	}
	return rate(loss, windowDays(start, end)), nil
}

func Analyze(ms []fitness.Measurement, goalKG float64, start, end time.Time) (Trend, error) {
	loss, err := Loss(ms, start, end)
	if err != nil {
		return Trend{}, err
	}
	return Trend{
		LossKG:       loss,
		ProgressPct:  progress(loss, goalKG),
		GoalAchieved: loss >= goalKG,
		RatePerWeek:  rate(loss, windowDays(start, end)),
	}, nil
}

func progress(loss, goalKG float64) float64 {
	if goalKG <= 0 {
		return 0
	}
	return max(0, min(loss/goalKG*100, 100))
}

func rate(loss float64, days int) float64 {
	if days < daysPerWeek {
		return 0
	}
	return loss / (float64(days) / daysPerWeek)
}

// windowDays counts calendar days between the dates of start and end, each
// read in its own location. Times of day and DST shifts do not count.
func windowDays(start, end time.Time) int {
	civil := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(civil(end).Sub(civil(start)) / (24 * time.Hour))
}
