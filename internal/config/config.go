package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	appenv "github.com/zyclope0/supernovafit-sub004/internal/env"
	"github.com/zyclope0/supernovafit-sub004/internal/metabolic"
	"github.com/zyclope0/supernovafit-sub004/internal/xslog"
)

const (
	DefaultPeriodDays       = 7
	DefaultBatchConcurrency = 4
)

type Config struct {
	Env      appenv.Environment `env:"ENV" envDefault:"production"`
	LogLevel string             `env:"LOG_LEVEL" envDefault:"info"`
	Engine   Engine             `envPrefix:"SUPERNOVA_"`
}

type Engine struct {
	// Dataset is empty when unset; callers fall back to paths.Dataset.
	Dataset          string  `env:"DATASET"`
	PeriodDays       int     `env:"PERIOD_DAYS" envDefault:"7"`
	FemaleFactor     float64 `env:"FEMALE_FACTOR" envDefault:"0.9"`
	BatchConcurrency int     `env:"BATCH_CONCURRENCY" envDefault:"4"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

// ReadFrom parses the given variables instead of the process environment.
func ReadFrom(environ map[string]string) (Config, error) {
	return env.ParseAsWithOptions[Config](env.Options{Environment: environ})
}

// Level falls back to xslog.Default on an unknown level.
func (c Config) Level() xslog.Level {
	level, err := xslog.Parse(c.LogLevel)
	if err != nil {
		return xslog.Default
	}
	return level
}

// Constants returns the estimator calibration with the configured overrides applied.
func (c Config) Constants() metabolic.Constants {
	constants := metabolic.DefaultConstants()
	if c.Engine.FemaleFactor > 0 {
		constants.FemaleFactor = c.Engine.FemaleFactor
	}
	return constants
}

func (c Config) Validate() error {
	if c.Engine.PeriodDays <= 0 {
		return fmt.Errorf("SUPERNOVA_PERIOD_DAYS must be positive, got %d", c.Engine.PeriodDays)
	}
	if c.Engine.FemaleFactor <= 0 || c.Engine.FemaleFactor > 1 {
		return fmt.Errorf("SUPERNOVA_FEMALE_FACTOR must be in (0, 1], got %v", c.Engine.FemaleFactor)
	}
	if c.Engine.BatchConcurrency <= 0 {
		return fmt.Errorf("SUPERNOVA_BATCH_CONCURRENCY must be positive, got %d", c.Engine.BatchConcurrency)
	}
	return nil
}
