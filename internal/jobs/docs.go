// Package jobs provides scheduled background tasks for the order backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the ordering service.
//
// # Available Jobs
//
// 1. NotificationRetryJob - Runs every minute to re-enqueue order notifications whose earlier sends failed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the notification dispatcher
//	jobManager := jobs.NewJobManager(dispatcher, logger)
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
// The retry job uses the cron expression "* * * * *", running once a minute.
// Spacing retries out keeps a flaky mail server from being hammered while
// still delivering notifications promptly once it recovers.
package jobs
