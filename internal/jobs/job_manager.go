package jobs

import (
	"fmt"
	"log/slog"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reconciliationRetryJob *ReconciliationRetryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query and command handlers as dependencies to wire up job execution.
func NewJobManager(
	pendingHandler queries.GetPendingReconciliationsQueryHandler,
	verifyHandler commands.VerifyInvoicesCommandHandler,
	retrySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reconciliationRetryJob: NewReconciliationRetryJob(
			pendingHandler, verifyHandler, retrySchedule, logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reconciliationRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start reconciliation retry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reconciliationRetryJob.Stop()
}
