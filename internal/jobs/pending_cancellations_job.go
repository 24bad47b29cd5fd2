package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodadmin/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingCancellationsJob periodically reports on the cancellation-request
// backlog so an unattended console still surfaces requests that are waiting
// too long for an admin decision.
type PendingCancellationsJob struct {
	handler  queries.GetPendingCancellationsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingCancellationsJob creates the backlog report job.
// The schedule is a six-field cron expression, e.g. "0 * * * * *" for every minute.
func NewPendingCancellationsJob(
	handler queries.GetPendingCancellationsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *PendingCancellationsJob {
	return &PendingCancellationsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pending_cancellations_job"),
	}
}

// Start begins the backlog report on the configured schedule.
func (j *PendingCancellationsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query := queries.NewGetPendingCancellationsQuery()

		requests, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending cancellations report failed", "error", err)
			return
		}

		if len(requests) == 0 {
			j.logger.InfoContext(ctx, "No cancellation requests awaiting decision")
			return
		}

		// Results are ordered oldest first, so the head of the list is the
		// longest-waiting customer.
		oldestAge := time.Since(requests[0].RequestedAt)
		j.logger.InfoContext(ctx, "Cancellation requests awaiting decision",
			"count", len(requests),
			"oldest_order_id", requests[0].OrderID.String(),
			"oldest_age", oldestAge.Round(time.Second).String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending cancellations job started", "schedule", j.schedule)
	return nil
}

// Stop stops the backlog report job.
func (j *PendingCancellationsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending cancellations job stopped")
}
