// Package jobs provides scheduled background tasks for the admin console.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order administration service.
//
// # Available Jobs
//
// 1. PendingCancellationsJob - Periodically reports the cancellation-request
// backlog: how many requests await an admin decision and how long the oldest
// one has been waiting.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pendingCancellationsHandler, "0 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The report schedule is a six-field cron expression taken from configuration,
// so operators can tune how often the backlog is surfaced in the logs.
//
// # Error Handling
//
// - Report failures are logged and retried on the next tick
// - Failed job starts abort application startup
package jobs
