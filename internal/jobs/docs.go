// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are built on github.com/robfig/cron/v3 with seconds-resolution
// schedules taken from configuration.
//
// # Available Jobs
//
// 1. PresenceSweepJob - re-evaluates live courier presence so subscribers see
// couriers going stale even when no further ping arrives (PRESENCE_SWEEP_SPEC)
// 2. OrderBacklogJob - counts orders per status into the orders_by_status
// gauge (BACKLOG_SPEC)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewPresenceSweepJob(hub, metrics, "*/15 * * * * *", logger),
//		jobs.NewOrderBacklogJob(orderRepo, metrics, "*/30 * * * * *", 5*time.Second, logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed count leaves the previous gauge values in place and is logged
// - Failed job starts will stop any already running jobs
package jobs
