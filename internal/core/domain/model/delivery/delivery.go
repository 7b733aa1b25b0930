package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not created
	// through NewDelivery or RestoreDelivery. This ensures all deliveries are validated.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrNotOwner is returned when a worker attempts a lifecycle action on a delivery
	// owned by another worker (or not claimed at all). The request is rejected with
	// no state change.
	ErrNotOwner = errors.New("delivery is not owned by this worker")

	// ErrItemsAreRequired is returned when creating a delivery with an empty item list.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrInvoiceRefIsRequired is returned when creating a delivery without an invoice
	// reference.
	ErrInvoiceRefIsRequired = errs.NewValueIsRequiredError("invoiceRef")
)

// Delivery is the aggregate root of the dispatch engine. It represents one
// outstanding delivery from an external invoice: first pooled, then claimed by
// exactly one worker together with exactly one vehicle, then driven through the
// bounded lifecycle until a terminal status.
//
// Invariants:
//   - workerID is set iff vehicleID is set iff the delivery left the pool via a
//     claim (see Status.ValidateAssignment for the canceled-from-pool exception)
//   - only the owning worker may start, delay, or complete the delivery
//   - terminal deliveries accept no further transitions; they can only be archived
//
// Mutation happens exclusively through the lifecycle methods below. The claim
// coordinator and state machine handlers persist these mutations with
// conditional updates so concurrent requests cannot partially apply.
type Delivery struct {
	id         kernel.UUID
	invoiceRef string
	items      []ItemRef
	status     Status
	workerID   *kernel.UUID
	vehicleID  *kernel.UUID
	claimedAt  *time.Time
	createdAt  time.Time
	archived   bool

	guard guard.ConstructorGuard
}

// NewDelivery creates a pooled delivery from an invoicing snapshot.
//
// Parameters:
//   - id: unique identifier for the delivery
//   - invoiceRef: opaque external invoice identifier (must be non-empty)
//   - items: read-only snapshot of what to deliver (must be non-empty, all valid)
//   - now: creation time, used for first-come pool ordering
//
// The new delivery starts in Pooled status with no worker or vehicle assigned.
func NewDelivery(id kernel.UUID, invoiceRef string, items []ItemRef, now time.Time) (*Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if invoiceRef == "" {
		return nil, ErrInvoiceRefIsRequired
	}
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Delivery{
		id:         id,
		invoiceRef: invoiceRef,
		items:      append([]ItemRef(nil), items...),
		status:     Pooled,
		createdAt:  now,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage.
// Unlike NewDelivery it accepts any lifecycle status, but it verifies the
// status/assignment invariant so corrupted rows cannot re-enter the domain.
func RestoreDelivery(
	id kernel.UUID,
	invoiceRef string,
	items []ItemRef,
	status Status,
	workerID *kernel.UUID,
	vehicleID *kernel.UUID,
	claimedAt *time.Time,
	createdAt time.Time,
	archived bool,
) (*Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateAssignment(workerID != nil, vehicleID != nil); err != nil {
		return nil, err
	}

	return &Delivery{
		id:         id,
		invoiceRef: invoiceRef,
		items:      append([]ItemRef(nil), items...),
		status:     status,
		workerID:   workerID,
		vehicleID:  vehicleID,
		claimedAt:  claimedAt,
		createdAt:  createdAt,
		archived:   archived,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// InvoiceRef returns the opaque external invoice identifier.
func (d *Delivery) InvoiceRef() string {
	return d.invoiceRef
}

// Items returns a copy of the item snapshot.
func (d *Delivery) Items() []ItemRef {
	return append([]ItemRef(nil), d.items...)
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// Worker returns the owning worker's ID, or nil while pooled.
func (d *Delivery) Worker() *kernel.UUID {
	return d.workerID
}

// Vehicle returns the reserved vehicle's ID, or nil while pooled.
// It is set and cleared atomically with Worker.
func (d *Delivery) Vehicle() *kernel.UUID {
	return d.vehicleID
}

// ClaimedAt returns the time of the successful claim, or nil while pooled.
func (d *Delivery) ClaimedAt() *time.Time {
	return d.claimedAt
}

// CreatedAt returns the pool entry time. The pool is ordered oldest first on it.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// IsArchived reports whether the delivery has been archived.
func (d *Delivery) IsArchived() bool {
	return d.archived
}

// Claim assigns the delivery to a worker and a vehicle in one step.
//
// Only valid from Pooled status. The worker and vehicle identifiers are set
// together with the Claimed status and the claim timestamp, so the aggregate
// can never be observed with one but not the other.
//
// The caller is responsible for having verified worker eligibility and vehicle
// availability, and for persisting this mutation with a conditional update so a
// concurrent claim on the same delivery loses cleanly.
func (d *Delivery) Claim(workerID, vehicleID kernel.UUID, now time.Time) error {
	if err := errors.Join(workerID.Validate(), vehicleID.Validate()); err != nil {
		return err
	}

	newStatus, err := d.status.Claim()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.workerID = &workerID
	d.vehicleID = &vehicleID
	d.claimedAt = &now
	return nil
}

// StartRoute marks the delivery as out for delivery.
// Only the owning worker may start (or resume) the route.
func (d *Delivery) StartRoute(actorID kernel.UUID) error {
	if err := d.validateOwner(actorID); err != nil {
		return err
	}

	newStatus, err := d.status.StartRoute()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Delay flags the delivery as taking longer than expected.
// Only the owning worker may delay; the vehicle stays reserved because the
// delivery is still in progress.
func (d *Delivery) Delay(actorID kernel.UUID) error {
	if err := d.validateOwner(actorID); err != nil {
		return err
	}

	newStatus, err := d.status.Delay()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Complete marks the delivery as handed over.
// Only the owning worker may complete. The caller must release the paired
// vehicle in the same atomic unit of work, symmetric with Claim.
func (d *Delivery) Complete(actorID kernel.UUID) error {
	if err := d.validateOwner(actorID); err != nil {
		return err
	}

	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Cancel terminates the delivery by administrative override.
// Valid from any non-terminal status; no ownership check because cancellation
// comes from the operations console, not a worker session. If a vehicle is
// attached the caller must release it in the same atomic unit of work.
func (d *Delivery) Cancel() error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Archive hides a terminal delivery from worker views.
// Deliveries are never destroyed by workers; archival is the only end of life.
func (d *Delivery) Archive() error {
	if !d.status.IsTerminal() {
		return invalidTransition(d.status, "archive")
	}

	d.archived = true
	return nil
}

func (d *Delivery) validateOwner(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if d.workerID == nil || !d.workerID.IsEqual(actorID) {
		return ErrNotOwner
	}
	return nil
}
