// Package jobs provides scheduled background tasks for the operations console.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and strictly read-only:
// order mutations always happen inside a caller's request, never from a
// background worker.
//
// # Available Jobs
//
// 1. PendingOrdersReportJob - Runs every minute and logs the count and total
// value of orders still in the pending status.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pendingOrdersReportHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
