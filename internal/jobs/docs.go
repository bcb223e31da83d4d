// Package jobs provides scheduled background tasks for the procurement
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for invoice reconciliation.
//
// # Available Jobs
//
// 1. ReconciliationRetryJob - Re-verifies delivered deliveries whose invoice
// reference has no positive ledger match yet.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pendingHandler, verifyHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The retry job takes a six-field cron expression with a seconds column, so
// the deployment decides how aggressive the retry loop is.
//
// # Error Handling
//
// The retry job logs failures and skips the cycle; the next tick picks the
// same pending deliveries up again. Failed job starts abort application
// startup.
package jobs
