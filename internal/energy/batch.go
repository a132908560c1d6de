package energy

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/zyclope0/supernovafit-sub004/internal/fitness"
	"github.com/zyclope0/supernovafit-sub004/internal/xslog"
)

// Input is one user's period, as handed to Aggregate.
type Input struct {
	Name       string
	Profile    *fitness.UserProfile
	Meals      []fitness.MealRecord
	Workouts   []fitness.WorkoutRecord
	PeriodDays int
}

// AggregateBatch computes every report concurrently. Reports are returned in
// input order; the first failing input cancels the rest.
func (a *Aggregator) AggregateBatch(ctx context.Context, inputs []Input) ([]Report, error) {
	reports := make([]Report, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("context cancelled: %w", err)
			}
			r, err := a.Aggregate(in.Profile, in.Meals, in.Workouts, in.PeriodDays)
			if err != nil {
				return fmt.Errorf("input %q: %w", in.Name, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.logger.ErrorContext(ctx, "batch aggregation failed", xslog.Error(err))
		return nil, err
	}

	a.logger.InfoContext(ctx, "batch aggregation complete", xslog.Count(len(inputs)))
	return reports, nil
}
