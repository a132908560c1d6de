package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	appenv "github.com/zyclope0/supernovafit-sub004/internal/env"
	"github.com/zyclope0/supernovafit-sub004/internal/xslog"
)

func TestReadFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ map[string]string
		want    Config
	}{
		{
			name:    "defaults",
			environ: map[string]string{},
			want: Config{
				Env:      appenv.Production,
				LogLevel: "info",
				Engine: Engine{
					PeriodDays:       DefaultPeriodDays,
					FemaleFactor:     0.9,
					BatchConcurrency: DefaultBatchConcurrency,
				},
			},
		},
		{
			name: "overrides",
			environ: map[string]string{
				"ENV":                         "development",
				"LOG_LEVEL":                   "debug",
				"SUPERNOVA_DATASET":           "/tmp/me.json",
				"SUPERNOVA_PERIOD_DAYS":       "30",
				"SUPERNOVA_FEMALE_FACTOR":     "0.85",
				"SUPERNOVA_BATCH_CONCURRENCY": "8",
			},
			want: Config{
				Env:      appenv.Development,
				LogLevel: "debug",
				Engine: Engine{
					Dataset:          "/tmp/me.json",
					PeriodDays:       30,
					FemaleFactor:     0.85,
					BatchConcurrency: 8,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadFrom(tt.environ)
			if err != nil {
				t.Fatalf("ReadFrom() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadFrom() mismatch (-want +got):\n%s", diff)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestReadFrom_BadNumber(t *testing.T) {
	t.Parallel()

	if _, err := ReadFrom(map[string]string{"SUPERNOVA_PERIOD_DAYS": "week"}); err == nil {
		t.Error("ReadFrom() error = nil, want parse error")
	}
	if _, err := ReadFrom(map[string]string{"ENV": "staging"}); err == nil {
		t.Error("ReadFrom() error = nil, want unknown environment")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := Config{Engine: Engine{PeriodDays: 7, FemaleFactor: 0.9, BatchConcurrency: 4}}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"zero period", func(c *Config) { c.Engine.PeriodDays = 0 }, true},
		{"factor above one", func(c *Config) { c.Engine.FemaleFactor = 1.1 }, true},
		{"factor zero", func(c *Config) { c.Engine.FemaleFactor = 0 }, true},
		{"no workers", func(c *Config) { c.Engine.BatchConcurrency = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := base
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConstants(t *testing.T) {
	t.Parallel()

	cfg := Config{Engine: Engine{FemaleFactor: 0.85}}
	got := cfg.Constants()
	if got.FemaleFactor != 0.85 {
		t.Errorf("FemaleFactor = %v, want 0.85", got.FemaleFactor)
	}
	if got.MaleFactor != 1.0 {
		t.Errorf("MaleFactor = %v, want 1.0", got.MaleFactor)
	}
	if len(got.Zones) != 4 {
		t.Errorf("len(Zones) = %d, want 4", len(got.Zones))
	}
}

func TestLevel(t *testing.T) {
	t.Parallel()

	if got := (Config{LogLevel: "WARN"}).Level(); got != xslog.LevelWarn {
		t.Errorf("Level() = %v, want warn", got)
	}
	if got := (Config{LogLevel: "loud"}).Level(); got != xslog.Default {
		t.Errorf("Level() = %v, want default", got)
	}
}
