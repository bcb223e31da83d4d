package jobs

import (
	"context"
	"log/slog"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ReconciliationRetryJob periodically re-verifies delivered deliveries whose
// invoice reference never got a positive match, typically because the ledger
// was unreachable or the invoice had not been registered yet.
type ReconciliationRetryJob struct {
	pendingHandler queries.GetPendingReconciliationsQueryHandler
	verifyHandler  commands.VerifyInvoicesCommandHandler
	schedule       string
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewReconciliationRetryJob creates the retry job. The schedule is a six-field
// cron expression with a seconds column.
func NewReconciliationRetryJob(
	pendingHandler queries.GetPendingReconciliationsQueryHandler,
	verifyHandler commands.VerifyInvoicesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ReconciliationRetryJob {
	return &ReconciliationRetryJob{
		pendingHandler: pendingHandler,
		verifyHandler:  verifyHandler,
		schedule:       schedule,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "reconciliation_retry_job"),
	}
}

// Start schedules the retry job.
func (j *ReconciliationRetryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation retry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the retry job.
func (j *ReconciliationRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation retry job stopped")
}

func (j *ReconciliationRetryJob) run() {
	ctx := context.Background()

	pending, err := j.pendingHandler.Handle(ctx, queries.NewGetPendingReconciliationsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load pending reconciliations", "error", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	items := make([]commands.VerificationItem, 0, len(pending))
	for _, p := range pending {
		items = append(items, commands.VerificationItem{
			DeliveryID:       p.DeliveryID,
			StoreID:          p.StoreID,
			InvoiceReference: p.InvoiceReference,
		})
	}

	cmd, err := commands.NewVerifyInvoicesCommand(items)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build verification batch", "error", err)
		return
	}

	results, err := j.verifyHandler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Reconciliation retry batch failed", "error", err)
		return
	}

	reconciled := 0
	for _, result := range results {
		if result.Exists {
			reconciled++
		}
	}
	j.logger.InfoContext(ctx, "Reconciliation retry batch finished",
		"pending", len(pending), "reconciled", reconciled)
}
