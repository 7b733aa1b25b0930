package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// staleClaimThreshold is how long a delivery may sit in the claimed status
// before the monitor reports it.
const staleClaimThreshold = 2 * time.Hour

// StaleClaimJob periodically reports deliveries claimed but never started.
// Monitoring only: stale claims are logged for the operations console, never
// re-pooled automatically.
type StaleClaimJob struct {
	handler queries.GetStaleDeliveriesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleClaimJob creates the stale-claim monitor.
func NewStaleClaimJob(handler queries.GetStaleDeliveriesQueryHandler, logger *slog.Logger) *StaleClaimJob {
	return &StaleClaimJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_claim_job"),
	}
}

// Start begins the monitor, running every 15 minutes.
func (j *StaleClaimJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * *", func() {
		ctx := context.Background()

		query, qErr := queries.NewGetStaleDeliveriesQuery(staleClaimThreshold)
		if qErr != nil {
			j.logger.ErrorContext(ctx, "Stale claim job failed to build query", "error", qErr)
			return
		}

		stale, hErr := j.handler.Handle(ctx, query)
		if hErr != nil {
			j.logger.ErrorContext(ctx, "Stale claim job failed", "error", hErr)
			return
		}

		for _, d := range stale {
			j.logger.WarnContext(ctx, "Delivery claimed but route not started",
				"delivery_id", d.ID.String(),
				"invoice_ref", d.InvoiceRef,
				"worker_id", d.WorkerID.String(),
				"claimed_at", d.ClaimedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale claim job started (running every 15 minutes)")
	return nil
}

// Stop stops the monitor.
func (j *StaleClaimJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale claim job stopped")
}
