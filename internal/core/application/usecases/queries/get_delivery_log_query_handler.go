package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/deliverylog"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryLogQueryHandler reads a delivery's audit trail from the database.
type GetDeliveryLogQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryLogQueryHandler creates a handler for audit trail queries.
func NewGetDeliveryLogQueryHandler(db *gorm.DB) GetDeliveryLogQueryHandler {
	return GetDeliveryLogQueryHandler{db: db}
}

// Handle executes the query and returns the trail oldest first.
func (h GetDeliveryLogQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryLogQuery,
) ([]GetDeliveryLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetDeliveryLogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			event_type,
			status,
			notes,
			photo_proof_url,
			created_by,
			created_at
		FROM delivery_log_entries
		WHERE delivery_id = ?
		ORDER BY created_at
	`, query.DeliveryID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDeliveryLogQueryResponse
		var id, createdBy uuid.UUID
		var eventType int
		var status *int
		var createdAt time.Time

		if err = rows.Scan(&id, &eventType, &status, &resp.Notes, &resp.PhotoProofURL, &createdBy, &createdAt); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		authorID, idErr := kernel.UUIDFromBytes(createdBy[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = entryID
		resp.EventType = deliverylog.EventType(eventType)
		resp.CreatedBy = authorID
		resp.CreatedAt = createdAt

		if status != nil {
			s := delivery.Status(*status)
			resp.Status = &s
		}

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
