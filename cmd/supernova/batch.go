package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/zyclope0/supernovafit-sub004/internal/dataset"
	"github.com/zyclope0/supernovafit-sub004/internal/energy"
	"github.com/zyclope0/supernovafit-sub004/internal/xslog"
)

const flagDir = "dir"

type batchRow struct {
	Name   string        `json:"name"`
	Report energy.Report `json:"report"`
}

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Energy balance for every dataset in a directory",
		Long: "Loads every *.json dataset in --dir and aggregates them concurrently, at most " +
			"$SUPERNOVA_BATCH_CONCURRENCY at a time. The first failure cancels the batch.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			var (
				ctx     = cmd.Context()
				dir, _  = cmd.Flags().GetString(flagDir)
				started = time.Now()
			)

			datasets, err := dataset.LoadDir(ctx, dir, a.cfg.Engine.BatchConcurrency)
			if err != nil {
				return err
			}

			inputs := a.builder.Inputs(datasets, a.cfg.Engine.PeriodDays)
			reports, err := a.aggregator.AggregateBatch(ctx, inputs)
			if err != nil {
				return fmt.Errorf("batch over %s: %w", dir, err)
			}
			a.logger.Info("batch done",
				xslog.Path(dir),
				xslog.Count(len(reports)),
				xslog.Duration(time.Since(started)))

			rows := make([]batchRow, len(reports))
			for i, r := range reports {
				rows[i] = batchRow{Name: inputs[i].Name, Report: r}
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			table := make([][]string, len(rows))
			for i, r := range rows {
				table[i] = []string{
					r.Name,
					strconv.Itoa(r.Report.BaseTDEE),
					strconv.Itoa(r.Report.AdjustedTDEE),
					strconv.Itoa(r.Report.AdjustedSportCalories),
					fmt.Sprintf("%.0f", r.Report.PeriodStats.Kcal),
					fmt.Sprintf("%+.0f", r.Report.EnergyBalance),
					strconv.FormatBool(r.Report.IsDeficit),
				}
			}
			return writeTable(cmd.OutOrStdout(),
				[]string{"NAME", "BASE", "ADJUSTED", "SPORT", "INTAKE", "BALANCE", "DEFICIT"},
				table)
		},
	}

	cmd.Flags().String(flagDir, ".", "directory of dataset files")
	return cmd
}
