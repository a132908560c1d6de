// Package weight computes body-weight trends over date windows from a
// sparse, unsorted series of measurements.
package weight

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/zyclope0/supernovafit-sub004/internal/fitness"
)

var ErrInvalidWindow = errors.New("window end precedes start")

// Point is a measurement that carries a weight.
type Point struct {
	Date     time.Time
	WeightKG float64
}

// Within returns the weighted measurements in [start, end], both bounds
// inclusive, sorted by date. Entries without a weight are skipped.
func Within(ms []fitness.Measurement, start, end time.Time) []Point {
	var pts []Point
	for _, m := range ms {
		if !m.HasWeight() || m.Date.Before(start) || m.Date.After(end) {
			continue
		}
		pts = append(pts, Point{Date: m.Date, WeightKG: *m.WeightKG})
	}
	slices.SortStableFunc(pts, func(a, b Point) int {
		return a.Date.Compare(b.Date)
	})
	return pts
}

// MonthWindow returns the first and last instant of ref's calendar month in ref's location.
func MonthWindow(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond)
}

func checkWindow(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("window %s..%s: %w",
			start.Format(time.DateOnly), end.Format(time.DateOnly), ErrInvalidWindow)
	}
	return nil
}

// lossWithin is earliest minus latest weight; fewer than two points yields 0.
func lossWithin(ms []fitness.Measurement, start, end time.Time) float64 {
	pts := Within(ms, start, end)
	if len(pts) < 2 {
		return 0
	}
	return pts[0].WeightKG - pts[len(pts)-1].WeightKG
}
