package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/zyclope0/supernovafit-sub004/internal/weight"
	"github.com/zyclope0/supernovafit-sub004/internal/xerrors"
	"github.com/zyclope0/supernovafit-sub004/internal/xslog"
)

const (
	flagGoal  = "goal"
	flagStart = "start"
	flagEnd   = "end"
	flagMonth = "month"
)

type trendOutput struct {
	Start  string       `json:"start"`
	End    string       `json:"end"`
	GoalKG float64      `json:"goal_kg"`
	Points int          `json:"points"`
	Trend  weight.Trend `json:"trend"`
}

func trendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Weight loss, goal progress and weekly rate over a window",
		Long: "Uses the earliest and latest weighed measurements inside the window, bounds included. " +
			"Without --start/--end the window is the calendar month of --month, or of the latest measurement.",
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

			goal, _ := cmd.Flags().GetFloat64(flagGoal)
			start, end, err := trendWindow(cmd, ds.LatestDate())
			if err != nil {
				return err
			}

			trend, err := weight.Analyze(ds.Measurements, goal, start, end)
			if err != nil {
				return xerrors.Invalid(xerrors.WithMessage("invalid trend window"), xerrors.WithCause(err))
			}
			a.logger.Debug("weight trend", xslog.Start(start), xslog.End(end), slog.Float64("loss_kg", trend.LossKG))

			out := trendOutput{
				Start:  start.Format(time.DateOnly),
				End:    end.Format(time.DateOnly),
				GoalKG: goal,
				Points: len(weight.Within(ds.Measurements, start, end)),
				Trend:  trend,
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			achieved := "no"
			if trend.GoalAchieved {
				achieved = "yes"
			}
			return writeSection(cmd.OutOrStdout(),
				fmt.Sprintf("Weight trend · %s to %s", out.Start, out.End),
				[]field{
					{"measurements", fmt.Sprintf("%d", out.Points)},
					{"loss", fmt.Sprintf("%.2f kg", trend.LossKG)},
					{"goal", fmt.Sprintf("%.2f kg", goal)},
					{"progress", fmt.Sprintf("%.0f%%", trend.ProgressPct)},
					{"achieved", achieved},
					{"rate", fmt.Sprintf("%.2f kg/week", trend.RatePerWeek)},
				})
		},
	}

	cmd.Flags().Float64(flagGoal, 0, "weight loss goal in kg")
	cmd.Flags().String(flagStart, "", "window start, YYYY-MM-DD (requires --end)")
	cmd.Flags().String(flagEnd, "", "window end, YYYY-MM-DD, inclusive (requires --start)")
	cmd.Flags().String(flagMonth, "", "any date in the month to analyze, YYYY-MM-DD")
	cmd.MarkFlagsRequiredTogether(flagStart, flagEnd)
	cmd.MarkFlagsMutuallyExclusive(flagMonth, flagStart)

	return cmd
}

// trendWindow resolves the flags to a window. An explicit end covers that whole day.
func trendWindow(cmd *cobra.Command, latest time.Time) (time.Time, time.Time, error) {
	startFlag, _ := cmd.Flags().GetString(flagStart)
	endFlag, _ := cmd.Flags().GetString(flagEnd)
	monthFlag, _ := cmd.Flags().GetString(flagMonth)

	if startFlag != "" {
		start, err := parseDateFlag(flagStart, startFlag)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := parseDateFlag(flagEnd, endFlag)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, end.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}

	ref := latest
	if monthFlag != "" {
		var err error
		if ref, err = parseDateFlag(flagMonth, monthFlag); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if ref.IsZero() {
		ref = time.Now().UTC()
	}
	start, end := weight.MonthWindow(ref)
	return start, end, nil
}

func parseDateFlag(name, value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, xerrors.Validation(map[string]string{"--" + name: "must be a YYYY-MM-DD date"})
	}
	return t, nil
}
