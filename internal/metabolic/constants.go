package metabolic

// ZoneBand multiplies MET when the heart-rate percentage is strictly below UpperPct.
type ZoneBand struct {
	UpperPct   float64
	Multiplier float64
}

// Constants are the calibration values of the estimator. They have no
// published calibration beyond the activity compendium, so they are kept
// overridable, but the defaults must not change: historical figures depend on them.
type Constants struct {
	FemaleFactor float64
	MaleFactor   float64
	// Zones are ordered by UpperPct; percentages at or above the last band use TopMultiplier.
	Zones         []ZoneBand
	TopMultiplier float64
}

const (
	DefaultFemaleFactor = 0.9
	DefaultMaleFactor   = 1.0
)

// DefaultConstants returns a fresh copy each call.
func DefaultConstants() Constants {
	return Constants{
		FemaleFactor: DefaultFemaleFactor,
		MaleFactor:   DefaultMaleFactor,
		Zones: []ZoneBand{
			{UpperPct: 60, Multiplier: 0.5},
			{UpperPct: 70, Multiplier: 0.7},
			{UpperPct: 80, Multiplier: 1.0},
			{UpperPct: 90, Multiplier: 1.3},
		},
		TopMultiplier: 1.6,
	}
}

type Option func(*Estimator)

func WithConstants(c Constants) Option {
	return func(e *Estimator) {
		e.c = c.clone()
	}
}

func WithFemaleFactor(f float64) Option {
	return func(e *Estimator) {
		e.c.FemaleFactor = f
	}
}

func (c Constants) clone() Constants {
	c.Zones = append([]ZoneBand(nil), c.Zones...)
	return c
}
