package tui

import (
	"log/slog"

	"github.com/zyclope0/supernovafit-sub004/internal/dataset"
	"github.com/zyclope0/supernovafit-sub004/internal/summary"
)

type Deps struct {
	Logger     *slog.Logger
	Builder    *summary.Builder
	Dataset    dataset.Dataset
	PeriodDays int
	GoalKG     float64
}
