package scheduler

import (
	"context"
	"time"

	"hotel-booking/internal/usecase"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// StartExpirySweeper runs a background job that cancels confirmed, unpaid
// bookings older than the expiry window, releasing their inventory.
// The caller shuts the returned scheduler down on exit.
func StartExpirySweeper(service usecase.BookingService, sweepEvery, olderThan time.Duration, log *zap.Logger) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	logger := log.With(zap.String("job", "booking_expiry"))

	_, err = sched.NewJob(
		gocron.DurationJob(sweepEvery),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			expired, err := service.ExpireUnpaidBookings(ctx, olderThan)
			if err != nil {
				logger.Error("Expiry sweep failed", zap.Error(err))
				return
			}

			if expired > 0 {
				logger.Info("Expiry sweep completed", zap.Int64("expired", expired))
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()

	logger.Info("Booking expiry sweeper started",
		zap.Duration("sweep_every", sweepEvery),
		zap.Duration("older_than", olderThan),
	)

	return sched, nil
}
