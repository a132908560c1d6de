package main

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zyclope0/supernovafit-sub004/internal/tui"
)

func dashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Launch the interactive dashboard",
		Long:  "Opens a full-screen view of goal progress, sport share of the TDEE, weekly weight rate and the weight curve.",
		Args:  cobra.NoArgs,
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
			model := tui.New(tui.Deps{
				Logger:     a.logger,
				Builder:    a.builder,
				Dataset:    ds,
				PeriodDays: a.cfg.Engine.PeriodDays,
				GoalKG:     goal,
			})

			p := tea.NewProgram(&model)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("dashboard: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Float64(flagGoal, 0, "weight loss goal in kg")
	return cmd
}
