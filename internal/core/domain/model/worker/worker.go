// Package worker contains the Worker aggregate. Workers are field staff who
// claim deliveries; only an active worker with an open attendance record for
// the current day is eligible to claim.
package worker

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrWorkerIsNotConstructed is returned when a Worker instance was not created
	// through NewWorker or RestoreWorker.
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")

	// ErrNameIsRequired is returned when creating a worker without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Worker represents a field worker account.
// The isActive flag is administrative: deactivated workers keep their history
// but are rejected at the claim eligibility gate before any delivery or vehicle
// state is touched.
type Worker struct {
	id       kernel.UUID
	name     string
	isActive bool

	guard guard.ConstructorGuard
}

// NewWorker creates an active worker account. Workers are seeded by operations
// staff, not self-registered.
func NewWorker(id kernel.UUID, name string) (*Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Worker{
		id:       id,
		name:     name,
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreWorker reconstructs a Worker aggregate from persistent storage.
func RestoreWorker(id kernel.UUID, name string, isActive bool) (*Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Worker{
		id:       id,
		name:     name,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Worker instance was properly constructed.
func (w *Worker) Validate() error {
	if w == nil {
		return ErrWorkerIsNotConstructed
	}
	return w.guard.Validate(ErrWorkerIsNotConstructed)
}

// ID returns the worker's unique identifier.
func (w *Worker) ID() kernel.UUID {
	return w.id
}

// Name returns the worker's display name.
func (w *Worker) Name() string {
	return w.name
}

// IsActive reports whether the account is administratively active.
func (w *Worker) IsActive() bool {
	return w.isActive
}

// Deactivate administratively disables the account.
// Deliveries the worker already holds stay claimed; re-pooling them is a manual
// administrative cancel, not an automatic consequence.
func (w *Worker) Deactivate() {
	w.isActive = false
}

// Activate re-enables the account.
func (w *Worker) Activate() {
	w.isActive = true
}
