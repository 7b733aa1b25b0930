package services

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/attendance"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/model/worker"
)

// ErrWorkerNotEligible is returned when a claim comes from a worker that is not
// administratively active or has no open attendance record for the day.
// The eligibility gate runs before any delivery or vehicle state is touched.
var ErrWorkerNotEligible = errors.New("worker is not eligible to claim deliveries")

// ClaimService is the domain service that executes a claim across the three
// aggregates it touches: the delivery leaves the pool, the vehicle becomes
// reserved, and the worker's eligibility is verified first.
//
// The service mutates in-memory aggregates only; the claim command handler
// persists both mutations inside one unit of work with conditional updates, so
// concurrent claims for the same delivery or vehicle resolve to exactly one
// winner.
type ClaimService struct{}

// NewClaimService creates a new ClaimService instance.
func NewClaimService() ClaimService {
	return ClaimService{}
}

// Claim verifies eligibility and applies the claim to the delivery and vehicle.
//
// Preconditions, checked in order:
//  1. the worker is active and att is an open attendance record for the day,
//     otherwise ErrWorkerNotEligible
//  2. the delivery is still pooled, otherwise delivery.ErrInvalidTransition
//  3. the vehicle is still available, otherwise vehicle.ErrVehicleNotAvailable
//
// On success the delivery carries the worker, vehicle and claim time, and the
// vehicle is reserved. On any error neither aggregate change may be persisted.
func (s ClaimService) Claim(
	d *delivery.Delivery,
	v *vehicle.Vehicle,
	w *worker.Worker,
	att *attendance.Record,
	now time.Time,
) error {
	if err := errors.Join(d.Validate(), v.Validate(), w.Validate()); err != nil {
		return err
	}

	if !w.IsActive() {
		return ErrWorkerNotEligible
	}
	if att == nil || att.Validate() != nil || !att.IsOpen() {
		return ErrWorkerNotEligible
	}

	if err := d.Claim(w.ID(), v.ID(), now); err != nil {
		return err
	}

	if err := v.Reserve(); err != nil {
		return err
	}

	return nil
}
