package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves a worker's notification feed.
// Reading the feed acknowledges it: unread items are marked read once listed.
type GetNotificationsQuery struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for a worker's feed.
func NewGetNotificationsQuery(workerID kernel.UUID) (GetNotificationsQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}

	return GetNotificationsQuery{
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// WorkerID returns the worker whose feed to read.
func (q GetNotificationsQuery) WorkerID() kernel.UUID {
	return q.workerID
}

// NotificationResponse represents one feed item.
type NotificationResponse struct {
	ID        kernel.UUID
	Message   string
	CreatedAt time.Time
	Read      bool
}

// GetNotificationsQueryResponse represents the feed at poll time: the items
// newest first and how many of them were unread before this poll.
type GetNotificationsQueryResponse struct {
	Items       []NotificationResponse
	UnreadCount int
}
