package worker

import (
	"context"
	"time"

	"github.com/mobileheap/profilecard/pkg/log"
)

type ContextJob func(context.Context) error

func PeriodicalContextJob(job ContextJob, every time.Duration, logger log.Logger) ContextJob {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := job(ctx); err != nil {
					logger.WithError(err).Error(ctx, "periodical job completed with error")
				}
			}
		}
	}
}
