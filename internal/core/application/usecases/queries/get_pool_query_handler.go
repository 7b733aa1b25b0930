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

// GetPoolQueryHandler reads the unclaimed pool from the database.
// Only deliveries still in the pooled status appear; the ordering is
// first-come by pool entry time so claims drain the oldest invoices first.
type GetPoolQueryHandler struct {
	db *gorm.DB
}

// NewGetPoolQueryHandler creates a handler for pool queries.
func NewGetPoolQueryHandler(db *gorm.DB) GetPoolQueryHandler {
	return GetPoolQueryHandler{db: db}
}

// Handle executes the query and returns pooled deliveries oldest first.
func (h GetPoolQueryHandler) Handle(
	ctx context.Context,
	query GetPoolQuery,
) ([]GetPoolQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pool := make([]GetPoolQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			invoice_ref,
			items,
			created_at
		FROM deliveries
		WHERE status = ?
		ORDER BY created_at
	`, delivery.Pooled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPoolQueryResponse
		var id uuid.UUID
		var itemsJSON []byte
		var createdAt time.Time

		if err = rows.Scan(&id, &resp.InvoiceRef, &itemsJSON, &createdAt); err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID
		resp.CreatedAt = createdAt

		if err = json.Unmarshal(itemsJSON, &resp.Items); err != nil {
			return nil, err
		}

		pool = append(pool, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pool, nil
}
