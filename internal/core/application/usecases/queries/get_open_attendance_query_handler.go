package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenAttendanceQueryHandler reads records left open past day rollover.
type GetOpenAttendanceQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenAttendanceQueryHandler creates a handler for open-record queries.
func NewGetOpenAttendanceQueryHandler(db *gorm.DB) GetOpenAttendanceQueryHandler {
	return GetOpenAttendanceQueryHandler{db: db}
}

// Handle executes the query and returns open records oldest day first.
func (h GetOpenAttendanceQueryHandler) Handle(
	ctx context.Context,
	query GetOpenAttendanceQuery,
) ([]GetOpenAttendanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	open := make([]GetOpenAttendanceQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			worker_id,
			day,
			check_in
		FROM attendance_records
		WHERE check_out IS NULL AND day < ?
		ORDER BY day
	`, query.Before()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenAttendanceQueryResponse
		var id, workerID uuid.UUID
		var day, checkIn time.Time

		if err = rows.Scan(&id, &workerID, &day, &checkIn); err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(workerID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = recordID
		resp.WorkerID = ownerID
		resp.Day = day
		resp.CheckIn = checkIn

		open = append(open, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return open, nil
}
