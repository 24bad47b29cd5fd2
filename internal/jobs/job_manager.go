package jobs

import (
	"fmt"
	"log/slog"

	"foodadmin/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingCancellationsJob *PendingCancellationsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	pendingCancellationsHandler queries.GetPendingCancellationsQueryHandler,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingCancellationsJob: NewPendingCancellationsJob(pendingCancellationsHandler, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingCancellationsJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending cancellations job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingCancellationsJob.Stop()
}
