package jobs

import (
	"fmt"

	"supermart/internal/pkg/logger"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	restockJob *RestockJob
	logger     *zap.Logger
}

// NewJobManager creates a new job manager. An empty restockSchedule disables
// the restock job.
func NewJobManager(
	planRestockHandler RestockPlanner,
	restockSchedule string,
	baseLogger *zap.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.Named(baseLogger, "jobs")}
	if restockSchedule != "" {
		jm.restockJob = NewRestockJob(planRestockHandler, restockSchedule, baseLogger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.restockJob == nil {
		jm.logger.Info("Restock job disabled")
		return nil
	}

	if err := jm.restockJob.Start(); err != nil {
		return fmt.Errorf("failed to start restock job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.restockJob != nil {
		jm.restockJob.Stop()
	}
}
