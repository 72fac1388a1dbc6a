package jobs

import (
	"context"
	"log/slog"

	"opsconsole/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingOrdersReportJob periodically logs the pending order backlog.
// Read-only: it never mutates orders, it only reports their state.
type PendingOrdersReportJob struct {
	handler queries.GetPendingOrdersReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersReportJob creates a job that reports the backlog every minute.
func NewPendingOrdersReportJob(
	handler queries.GetPendingOrdersReportQueryHandler,
	logger *slog.Logger,
) *PendingOrdersReportJob {
	return &PendingOrdersReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_orders_report_job"),
	}
}

// Start begins the report job to run every minute.
func (j *PendingOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetPendingOrdersReportQuery()

		report, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders report failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Pending orders backlog",
			"count", report.PendingCount,
			"value", report.PendingValue,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *PendingOrdersReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders report job stopped")
}
