package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	presenceSweepJob *PresenceSweepJob
	orderBacklogJob  *OrderBacklogJob
}

func NewJobManager(presenceSweepJob *PresenceSweepJob, orderBacklogJob *OrderBacklogJob) *JobManager {
	return &JobManager{
		presenceSweepJob: presenceSweepJob,
		orderBacklogJob:  orderBacklogJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.presenceSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start presence sweep job: %w", err)
	}

	if err := jm.orderBacklogJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.presenceSweepJob.Stop()
		return fmt.Errorf("failed to start order backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.orderBacklogJob.Stop()
	jm.presenceSweepJob.Stop()
}
