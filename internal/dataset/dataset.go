// Package dataset reads the JSON exports the engine runs on.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/zyclope0/supernovafit-sub004/internal/energy"
	"github.com/zyclope0/supernovafit-sub004/internal/fitness"
	"github.com/zyclope0/supernovafit-sub004/internal/validator"
	"github.com/zyclope0/supernovafit-sub004/internal/xerrors"
)

const Ext = ".json"

// workoutNamespace seeds the IDs of workouts exported without one.
var workoutNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("supernovafit:workout"))

type Dataset struct {
	Name         string
	Profile      *fitness.UserProfile
	Workouts     []fitness.WorkoutRecord
	Meals        []fitness.MealRecord
	Measurements []fitness.Measurement
}

func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Dataset{}, xerrors.NotFound(xerrors.WithMessage("dataset "+path+" not found"), xerrors.WithCause(err))
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ds, err := Decode(f, name)
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Decode parses and validates one dataset. Validation failures are reported
// together as a single *xerrors.Error whose fields are prefixed by section.
func Decode(r io.Reader, name string) (Dataset, error) {
	var raw fileJSON
	if err := go_json.NewDecoder(r).Decode(&raw); err != nil {
		return Dataset{}, xerrors.Invalid(xerrors.WithMessage("malformed dataset"), xerrors.WithCause(err))
	}

	var (
		ds   = Dataset{Name: name}
		errs []*xerrors.Error
	)

	if raw.Profile != nil {
		p, fields := raw.Profile.toDomain()
		ds.Profile = &p
		errs = append(errs, fieldErr("profile.", fields), prefixed("profile.", validator.Validate(p)))
	}

	ds.Workouts = make([]fitness.WorkoutRecord, 0, len(raw.Workouts))
	for i, w := range raw.Workouts {
		rec, fields := w.toDomain(name, i)
		ds.Workouts = append(ds.Workouts, rec)
		errs = append(errs, fieldErr(fmt.Sprintf("workouts[%d].", i), fields))
	}
	errs = append(errs, validator.ValidateAll("workouts", ds.Workouts))

	ds.Meals = make([]fitness.MealRecord, 0, len(raw.Meals))
	for i, m := range raw.Meals {
		rec, fields := m.toDomain()
		ds.Meals = append(ds.Meals, rec)
		errs = append(errs, fieldErr(fmt.Sprintf("meals[%d].", i), fields))
	}
	errs = append(errs, validator.ValidateAll("meals", ds.Meals))

	ds.Measurements = make([]fitness.Measurement, 0, len(raw.Measurements))
	for i, m := range raw.Measurements {
		rec, fields := m.toDomain()
		ds.Measurements = append(ds.Measurements, rec)
		errs = append(errs, fieldErr(fmt.Sprintf("measurements[%d].", i), fields))
	}
	errs = append(errs, validator.ValidateAll("measurements", ds.Measurements))

	if err := xerrors.Merge(errs...); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Period keeps the meals and workouts dated within the days days ending on end, inclusive.
// Measurements are left untouched.
func (d Dataset) Period(end time.Time, days int) Dataset {
	end = dayOf(end)
	start := end.AddDate(0, 0, -(days - 1))
	inRange := func(t time.Time) bool {
		t = dayOf(t)
		return !t.Before(start) && !t.After(end)
	}

	out := d
	out.Workouts = nil
	for _, w := range d.Workouts {
		if inRange(w.Date) {
			out.Workouts = append(out.Workouts, w)
		}
	}
	out.Meals = nil
	for _, m := range d.Meals {
		if inRange(m.Date) {
			out.Meals = append(out.Meals, m)
		}
	}
	return out
}

// LatestDate is the most recent date across every record, or the zero time when empty.
func (d Dataset) LatestDate() time.Time {
	var dates []time.Time
	for _, w := range d.Workouts {
		dates = append(dates, w.Date)
	}
	for _, m := range d.Meals {
		dates = append(dates, m.Date)
	}
	for _, m := range d.Measurements {
		dates = append(dates, m.Date)
	}
	if len(dates) == 0 {
		return time.Time{}
	}
	return slices.MaxFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
}

func (d Dataset) Input(periodDays int) energy.Input {
	return energy.Input{
		Name:       d.Name,
		Profile:    d.Profile,
		Meals:      d.Meals,
		Workouts:   d.Workouts,
		PeriodDays: periodDays,
	}
}

func (p profileJSON) toDomain() (fitness.UserProfile, map[string]string) {
	var fields map[string]string
	sex, ok := fitness.ParseSex(p.Sex)
	if !ok {
		fields = map[string]string{"sex": `must be "M" or "F"`}
		sex = fitness.Sex(p.Sex)
	}
	return fitness.UserProfile{
		Age:           p.Age,
		WeightKG:      p.WeightKG,
		HeightCM:      p.HeightCM,
		Sex:           sex,
		ActivityLevel: fitness.ActivityLevel(strings.ToLower(strings.TrimSpace(p.ActivityLevel))),
	}, fields
}

func (w workoutJSON) toDomain(name string, index int) (fitness.WorkoutRecord, map[string]string) {
	fields := make(map[string]string)

	date, err := parseDate(w.Date)
	if err != nil {
		fields["date"] = err.Error()
	}

	var id uuid.UUID
	if w.ID != "" {
		if id, err = uuid.Parse(w.ID); err != nil {
			fields["id"] = "must be a UUID"
		}
	} else {
		id = workoutID(name, index, w)
	}

	return fitness.WorkoutRecord{
		ID:                id,
		Date:              date,
		Type:              fitness.ActivityType(w.Type).Normalize(),
		DurationMin:       w.DurationMin,
		AvgHeartRate:      w.AvgHeartRate,
		MaxHeartRate:      w.MaxHeartRate,
		DistanceKM:        w.DistanceKM,
		AvgSpeedKMH:       w.AvgSpeedKMH,
		PerceivedExertion: w.PerceivedExertion,
		Calories:          w.Calories,
	}, fields
}

func (m mealJSON) toDomain() (fitness.MealRecord, map[string]string) {
	date, err := parseDate(m.Date)
	if err != nil {
		return fitness.MealRecord{}, map[string]string{"date": err.Error()}
	}
	return fitness.MealRecord{Date: date, Kcal: m.Kcal, ProteinG: m.ProteinG, CarbsG: m.CarbsG, FatG: m.FatG}, nil
}

func (m measurementJSON) toDomain() (fitness.Measurement, map[string]string) {
	date, err := parseDate(m.Date)
	if err != nil {
		return fitness.Measurement{}, map[string]string{"date": err.Error()}
	}
	return fitness.Measurement{Date: date, WeightKG: m.WeightKG}, nil
}

// workoutID derives a stable ID so that reloading the same file yields the same records.
func workoutID(name string, index int, w workoutJSON) uuid.UUID {
	key := fmt.Sprintf("%s|%d|%s|%s|%g", name, index, w.Date, w.Type, w.DurationMin)
	return uuid.NewSHA1(workoutNamespace, []byte(key))
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("must be a %s date", time.DateOnly)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func fieldErr(prefix string, fields map[string]string) *xerrors.Error {
	if len(fields) == 0 {
		return nil
	}
	return xerrors.Validation(fields, xerrors.WithFieldPrefix(prefix))
}

func prefixed(prefix string, err *xerrors.Error) *xerrors.Error {
	if err == nil {
		return nil
	}
	return xerrors.Validation(err.Validation.Fields, xerrors.WithFieldPrefix(prefix))
}
