// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field
// in the schedule expression.
//
// # Available Jobs
//
// StaleQuoteRequestJob sweeps for orders stuck in QUOTE_REQUESTED longer
// than a configured age and logs each one so lab staff can follow up. It
// only reports; it never mutates orders.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(staleQuoteRequestJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
