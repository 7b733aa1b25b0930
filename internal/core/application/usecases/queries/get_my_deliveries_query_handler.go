package queries

import (
	"context"
	"encoding/json"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMyDeliveriesQueryHandler reads one worker's deliveries from the database.
// Archived rows are hidden; active work sorts before terminal history, newest
// claim first within each group.
type GetMyDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetMyDeliveriesQueryHandler creates a handler for worker delivery queries.
func NewGetMyDeliveriesQueryHandler(db *gorm.DB) GetMyDeliveriesQueryHandler {
	return GetMyDeliveriesQueryHandler{db: db}
}

// Handle executes the query and returns the worker's deliveries.
func (h GetMyDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetMyDeliveriesQuery,
) ([]GetMyDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetMyDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			invoice_ref,
			items,
			status,
			vehicle_id,
			claimed_at,
			created_at
		FROM deliveries
		WHERE worker_id = ? AND NOT archived
		ORDER BY status IN (?, ?), claimed_at DESC
	`, query.WorkerID().String(), delivery.Completed, delivery.Canceled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetMyDeliveriesQueryResponse
		var id uuid.UUID
		var itemsJSON []byte
		var status int
		var vehicleID *uuid.UUID
		var claimedAt *time.Time
		var createdAt time.Time

		if err = rows.Scan(&id, &resp.InvoiceRef, &itemsJSON, &status, &vehicleID, &claimedAt, &createdAt); err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID
		resp.Status = delivery.Status(status)
		resp.ClaimedAt = claimedAt
		resp.CreatedAt = createdAt

		if vehicleID != nil {
			vid, vidErr := kernel.UUIDFromBytes(vehicleID[:])
			if vidErr != nil {
				return nil, vidErr
			}
			resp.VehicleID = &vid
		}

		if err = json.Unmarshal(itemsJSON, &resp.Items); err != nil {
			return nil, err
		}

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
