package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Energy balance over the last period of the dataset",
		Long: "Aggregates meals and workouts of the period ending on the latest record. Workouts logged " +
			"without calories are estimated first; sport calories are then scaled by the activity-level " +
			"correction factor so that training already counted in the activity level is not counted twice.",
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

			s, err := a.builder.Build(ds, a.cfg.Engine.PeriodDays, 0)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), s.Report)
			}

			r := s.Report
			return writeSection(cmd.OutOrStdout(),
				fmt.Sprintf("Energy balance · %d days to %s", r.PeriodDays, s.Ref.Format(time.DateOnly)),
				[]field{
					{"base TDEE", fmt.Sprintf("%d kcal/day", r.BaseTDEE)},
					{"adjusted TDEE", fmt.Sprintf("%d kcal/day", r.AdjustedTDEE)},
					{"correction factor", fmt.Sprintf("%.2f", r.CorrectionFactor)},
					{"sport (raw)", fmt.Sprintf("%d kcal", r.RawSportCalories)},
					{"sport (adjusted)", fmt.Sprintf("%d kcal", r.AdjustedSportCalories)},
					{"sport per day", fmt.Sprintf("%.0f kcal", r.AvgDailySportCalories)},
					{"workouts", fmt.Sprintf("%d (%d estimated)", len(r.AdjustedTrainings), s.Estimated)},
					{"intake", fmt.Sprintf("%.0f kcal · P %.0fg · C %.0fg · F %.0fg",
						r.PeriodStats.Kcal, r.PeriodStats.ProteinG, r.PeriodStats.CarbsG, r.PeriodStats.FatG)},
					{"balance", balanceValue(r.EnergyBalance, r.IsDeficit)},
					{"daily balance", fmt.Sprintf("%+.0f kcal/day", r.DailyEnergyBalance)},
				})
		},
	}
}
