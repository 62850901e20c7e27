// Package jobs provides scheduled background tasks for the storefront system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. LowStockCheckJob - Runs every minute to flag inventory at or below its reorder threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getLowStockHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The low stock check logs query failures and keeps running; individual low
// stock findings are warnings, not errors.
package jobs
