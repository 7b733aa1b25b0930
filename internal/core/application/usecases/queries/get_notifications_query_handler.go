package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetNotificationsQueryHandler reads a worker's notification feed.
// Unlike the other queries this one goes through the feed port rather than the
// database: the feed is an in-process projection of committed events.
type GetNotificationsQueryHandler struct {
	feed ports.NotificationFeed
}

// NewGetNotificationsQueryHandler creates a handler for feed polls.
func NewGetNotificationsQueryHandler(feed ports.NotificationFeed) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{feed: feed}
}

// Handle returns the feed and acknowledges its unread items.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) (GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	items, unread, err := h.feed.List(ctx, query.WorkerID())
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	resp := GetNotificationsQueryResponse{
		Items:       make([]NotificationResponse, 0, len(items)),
		UnreadCount: unread,
	}
	for _, n := range items {
		resp.Items = append(resp.Items, NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
			Read:      n.Read,
		})
	}

	if unread > 0 {
		if err = h.feed.MarkAllRead(ctx, query.WorkerID()); err != nil {
			return GetNotificationsQueryResponse{}, err
		}
	}

	return resp, nil
}
