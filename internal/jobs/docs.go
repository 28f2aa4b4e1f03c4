// Package jobs provides scheduled background tasks for the orders service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order lifecycle management.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Runs every minute to cancel orders that were
// submitted but not paid within the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, staleOrderTTL, logger)
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
// The cancellation job uses the cron expression "0 * * * * *" which means it
// runs at the top of every minute. Orders that lose a concurrent state race
// during a sweep are skipped and picked up again on the next run.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next scheduled run
// - Failed job starts will stop any already running jobs
package jobs
