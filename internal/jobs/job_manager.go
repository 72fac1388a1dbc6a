package jobs

import (
	"fmt"
	"log/slog"

	"opsconsole/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingOrdersReportJob *PendingOrdersReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	pendingOrdersReportHandler queries.GetPendingOrdersReportQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrdersReportJob: NewPendingOrdersReportJob(pendingOrdersReportHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrdersReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending orders report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrdersReportJob.Stop()
}
