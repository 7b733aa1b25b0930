package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaleDeliveriesQueryHandler reads claims stuck in the claimed status.
type GetStaleDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleDeliveriesQueryHandler creates a handler for stale-claim queries.
func NewGetStaleDeliveriesQueryHandler(db *gorm.DB) GetStaleDeliveriesQueryHandler {
	return GetStaleDeliveriesQueryHandler{db: db}
}

// Handle executes the query and returns stale claims oldest first.
func (h GetStaleDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetStaleDeliveriesQuery,
) ([]GetStaleDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())
	stale := make([]GetStaleDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			invoice_ref,
			status,
			worker_id,
			claimed_at
		FROM deliveries
		WHERE status = ? AND claimed_at < ?
		ORDER BY claimed_at
	`, delivery.Claimed, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStaleDeliveriesQueryResponse
		var id, workerID uuid.UUID
		var status int
		var claimedAt time.Time

		if err = rows.Scan(&id, &resp.InvoiceRef, &status, &workerID, &claimedAt); err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(workerID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = deliveryID
		resp.Status = delivery.Status(status)
		resp.WorkerID = ownerID
		resp.ClaimedAt = claimedAt

		stale = append(stale, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}
