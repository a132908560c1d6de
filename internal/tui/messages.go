package tui

import (
	"time"

	"github.com/zyclope0/supernovafit-sub004/internal/summary"
)

const splashDuration = 1200 * time.Millisecond

type SplashTickMsg struct{}

type SummaryMsg struct {
	Summary summary.Summary
	Err     error
}
