package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zyclope0/supernovafit-sub004/internal/calorie"
	"github.com/zyclope0/supernovafit-sub004/internal/config"
	"github.com/zyclope0/supernovafit-sub004/internal/dataset"
	"github.com/zyclope0/supernovafit-sub004/internal/energy"
	"github.com/zyclope0/supernovafit-sub004/internal/metabolic"
	"github.com/zyclope0/supernovafit-sub004/internal/paths"
	"github.com/zyclope0/supernovafit-sub004/internal/summary"
	"github.com/zyclope0/supernovafit-sub004/internal/version"
	"github.com/zyclope0/supernovafit-sub004/internal/xcontext"
	"github.com/zyclope0/supernovafit-sub004/internal/xerrors"
	"github.com/zyclope0/supernovafit-sub004/internal/xslog"
)

const (
	flagFile = "file"
	flagDays = "days"
	flagJSON = "json"
)

// app is everything a command needs, built once from the environment and flags.
type app struct {
	cfg        config.Config
	logger     *slog.Logger
	engine     *calorie.Engine
	aggregator *energy.Aggregator
	builder    *summary.Builder
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "supernova",
		Short:   "Workout calories, energy balance and weight trend from your fitness log",
		Version: version.Get(),
		// usage on a domain error is noise
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP(flagFile, "f", "", "dataset file (default $SUPERNOVA_DATASET or ~/.config/supernovafit/dataset.json)")
	rootCmd.PersistentFlags().Int(flagDays, 0, "period length in days (default $SUPERNOVA_PERIOD_DAYS)")
	rootCmd.PersistentFlags().Bool(flagJSON, false, "print JSON instead of text")

	rootCmd.AddCommand(
		estimateCmd(),
		balanceCmd(),
		trendCmd(),
		batchCmd(),
		dashCmd(),
	)
	addDevCommands(rootCmd)

	return rootCmd
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if days, _ := cmd.Flags().GetInt(flagDays); days > 0 {
		cfg.Engine.PeriodDays = days
	}
	if err := cfg.Validate(); err != nil {
		return nil, xerrors.Invalid(xerrors.WithMessage("invalid configuration"), xerrors.WithCause(err))
	}

	// the context logger stays free of run_id: xerrors.Log adds it from the context
	var (
		runID  = uuid.NewString()
		base   = xslog.NewLoggerFor(os.Stderr, cfg.Level(), cfg.Env).With(xslog.Version())
		logger = base.With(xslog.RunID(runID))
	)
	cmd.SetContext(xslog.WithLogger(xcontext.SetRunID(cmd.Context(), runID), base))

	var (
		estimator  = metabolic.New(metabolic.WithFemaleFactor(cfg.Engine.FemaleFactor))
		engine     = calorie.New(calorie.WithEstimator(estimator), calorie.WithLogger(logger))
		aggregator = energy.New(energy.WithLogger(logger), energy.WithConcurrency(cfg.Engine.BatchConcurrency))
	)

	return &app{
		cfg:        cfg,
		logger:     logger,
		engine:     engine,
		aggregator: aggregator,
		builder:    summary.New(summary.WithEngine(engine), summary.WithAggregator(aggregator)),
	}, nil
}

func (a *app) loadDataset(cmd *cobra.Command) (dataset.Dataset, error) {
	flag, _ := cmd.Flags().GetString(flagFile)
	path, err := paths.Resolve(flag, a.cfg.Engine.Dataset)
	if err != nil {
		return dataset.Dataset{}, err
	}

	ds, err := dataset.Load(path)
	if err != nil {
		xerrors.Log(xslog.With(cmd.Context(), xslog.Path(path)), err)
		return dataset.Dataset{}, err
	}

	cmd.SetContext(xslog.With(cmd.Context(), xslog.Dataset(ds.Name)))
	a.logger = a.logger.With(xslog.Dataset(ds.Name))
	a.logger.Debug("dataset loaded",
		xslog.Path(path),
		slog.Int("workouts", len(ds.Workouts)),
		slog.Int("meals", len(ds.Meals)),
		slog.Int("measurements", len(ds.Measurements)))
	return ds, nil
}

func jsonOutput(cmd *cobra.Command) bool {
	asJSON, _ := cmd.Flags().GetBool(flagJSON)
	return asJSON
}
