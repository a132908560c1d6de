//go:build !release

package main

import (
	"github.com/spf13/cobra"

	"github.com/zyclope0/supernovafit-sub004/internal/metabolic"
)

type effectiveConfig struct {
	Env              string                        `json:"env"`
	LogLevel         string                        `json:"log_level"`
	Dataset          string                        `json:"dataset,omitempty"`
	PeriodDays       int                           `json:"period_days"`
	BatchConcurrency int                           `json:"batch_concurrency"`
	Constants        metabolic.Constants           `json:"constants"`
	METTable         map[string]metabolic.METEntry `json:"met_table"`
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration and calibration tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			table := make(map[string]metabolic.METEntry)
			for typ, entry := range metabolic.METTable() {
				table[string(typ)] = entry
			}

			return writeJSON(cmd.OutOrStdout(), effectiveConfig{
				Env:              string(a.cfg.Env),
				LogLevel:         a.cfg.Level().String(),
				Dataset:          a.cfg.Engine.Dataset,
				PeriodDays:       a.cfg.Engine.PeriodDays,
				BatchConcurrency: a.cfg.Engine.BatchConcurrency,
				Constants:        a.cfg.Constants(),
				METTable:         table,
			})
		},
	}
}
