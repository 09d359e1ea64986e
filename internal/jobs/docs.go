// Package jobs provides scheduled background tasks for the store.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// RestockJob runs PlanRestockCommand on the RESTOCK_CRON schedule, so the
// current manifest always reflects the latest inventory. It never delivers.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&planRestockHandler, "@every 1h", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Planning failures are logged and retried on the next tick. An invalid
// schedule fails StartAll.
package jobs
