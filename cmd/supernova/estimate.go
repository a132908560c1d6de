package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zyclope0/supernovafit-sub004/internal/calorie"
	"github.com/zyclope0/supernovafit-sub004/internal/xerrors"
)

type estimateRow struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Type        string    `json:"type"`
	DurationMin float64   `json:"duration_min"`
	// Logged is the calorie figure recorded with the workout, if any.
	Logged   *int             `json:"logged_calories,omitempty"`
	Estimate calorie.Estimate `json:"estimate"`
}

func estimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the calories of every workout",
		Long: "Estimates each workout from the richest signal it carries: heart rate, then speed or " +
			"distance, then duration alone. Perceived exertion is used when only duration is known.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			ds, err := a.loadDataset(cmd)
			if err != nil {
				return err
			}
			if ds.Profile == nil {
				return xerrors.Invalid(xerrors.WithMessage("estimating calories requires a profile in the dataset"))
			}

			rows := make([]estimateRow, len(ds.Workouts))
			for i, w := range ds.Workouts {
				rows[i] = estimateRow{
					ID:          w.ID,
					Date:        w.Date.Format(time.DateOnly),
					Type:        string(w.Type),
					DurationMin: w.DurationMin,
					Logged:      w.Calories,
					Estimate:    a.engine.EstimateWorkout(w, *ds.Profile),
				}
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			table := make([][]string, len(rows))
			for i, r := range rows {
				logged := "-"
				if r.Logged != nil {
					logged = strconv.Itoa(*r.Logged)
				}
				table[i] = []string{
					r.Date,
					r.Type,
					fmt.Sprintf("%.0f min", r.DurationMin),
					logged,
					strconv.Itoa(r.Estimate.Calories),
					r.Estimate.Confidence.String(),
					r.Estimate.Method,
				}
			}
			return writeTable(cmd.OutOrStdout(),
				[]string{"DATE", "TYPE", "DURATION", "LOGGED", "KCAL", "CONFIDENCE", "METHOD"},
				table)
		},
	}
}
