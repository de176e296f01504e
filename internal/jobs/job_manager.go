package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleQuoteRequestJob *StaleQuoteRequestJob
}

// NewJobManager creates a job manager over the given jobs.
func NewJobManager(staleQuoteRequestJob *StaleQuoteRequestJob) *JobManager {
	return &JobManager{
		staleQuoteRequestJob: staleQuoteRequestJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleQuoteRequestJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale quote request job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleQuoteRequestJob.Stop()
}
