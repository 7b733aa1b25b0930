package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/attendance"
	"dispatch/internal/core/domain/model/delivery"
)

// Request bodies. Validation tags run through the echo validator; identifier
// formats are re-checked by the kernel UUID constructors.

type claimRequest struct {
	VehicleID string `json:"vehicleId" validate:"required,uuid"`
}

type delayRequest struct {
	Notes string `json:"notes"`
}

type completeRequest struct {
	Notes         string `json:"notes"`
	PhotoProofURL string `json:"photoProofUrl" validate:"omitempty,url"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type editLogRequest struct {
	Notes string `json:"notes" validate:"required"`
}

type createDeliveryRequest struct {
	InvoiceRef string              `json:"invoiceRef" validate:"required"`
	Items      []createItemRequest `json:"items" validate:"required,min=1,dive"`
}

type createItemRequest struct {
	SKU      string `json:"sku" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type addVehicleRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
}

type addWorkerRequest struct {
	Name string `json:"name" validate:"required"`
}

// Response bodies.

type itemResponse struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type deliveryResponse struct {
	ID         string         `json:"id"`
	InvoiceRef string         `json:"invoiceRef"`
	Items      []itemResponse `json:"items"`
	Status     string         `json:"status"`
	WorkerID   *string        `json:"workerId,omitempty"`
	VehicleID  *string        `json:"vehicleId,omitempty"`
	ClaimedAt  *time.Time     `json:"claimedAt,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type vehicleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type workerResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type attendanceResponse struct {
	ID       string     `json:"id"`
	WorkerID string     `json:"workerId"`
	Day      string     `json:"day"`
	CheckIn  time.Time  `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
	Status   string     `json:"status"`
}

type logEntryResponse struct {
	ID            string    `json:"id"`
	EventType     string    `json:"eventType"`
	Status        *string   `json:"status,omitempty"`
	Notes         string    `json:"notes"`
	PhotoProofURL string    `json:"photoProofUrl,omitempty"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

type notificationsResponse struct {
	Items       []notificationResponse `json:"items"`
	UnreadCount int                    `json:"unreadCount"`
}

func toDeliveryResponse(d *delivery.Delivery) deliveryResponse {
	items := make([]itemResponse, 0, len(d.Items()))
	for _, item := range d.Items() {
		items = append(items, itemResponse{
			SKU:      item.SKU(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
		})
	}

	resp := deliveryResponse{
		ID:         d.ID().String(),
		InvoiceRef: d.InvoiceRef(),
		Items:      items,
		Status:     d.Status().String(),
		ClaimedAt:  d.ClaimedAt(),
		CreatedAt:  d.CreatedAt(),
	}
	if id := d.Worker(); id != nil {
		s := id.String()
		resp.WorkerID = &s
	}
	if id := d.Vehicle(); id != nil {
		s := id.String()
		resp.VehicleID = &s
	}

	return resp
}

func toAttendanceResponse(record *attendance.Record) attendanceResponse {
	return attendanceResponse{
		ID:       record.ID().String(),
		WorkerID: record.Worker().String(),
		Day:      record.Day().Format("2006-01-02"),
		CheckIn:  record.CheckInTime(),
		CheckOut: record.CheckOutTime(),
		Status:   record.Status().String(),
	}
}

func toItemResponses(items []queries.ItemResponse) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, itemResponse(item))
	}
	return out
}
