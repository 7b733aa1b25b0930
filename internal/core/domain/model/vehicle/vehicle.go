package vehicle

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not created
	// through NewVehicle or RestoreVehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

	// ErrVehicleNotAvailable is returned when reserving a vehicle that is not
	// Available. Expected under concurrency: whichever claim committed first holds
	// the reservation.
	ErrVehicleNotAvailable = errors.New("vehicle is not available")

	// ErrVehicleNotReserved is returned when releasing a vehicle that is not
	// Reserved. Reaching it indicates a broken atomic unit, since releases only
	// happen inside terminal delivery transitions.
	ErrVehicleNotReserved = errors.New("vehicle is not reserved")

	// ErrNameIsRequired is returned when creating a vehicle without a registration name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Vehicle is an aggregate representing one unit of the delivery fleet.
//
// A vehicle toggles between Available and Reserved for its whole lifetime.
// It is Reserved iff it is attached to exactly one non-terminal delivery;
// Reserve and Release are never called standalone but only from inside the
// claim coordinator's and state machine's atomic units, which preserves that
// invariant transactionally.
type Vehicle struct {
	id     kernel.UUID
	name   string
	vtype  Type
	status VehicleStatus

	guard guard.ConstructorGuard
}

// NewVehicle creates an available vehicle of the given type.
// Vehicles are seeded by operations staff, not by workers.
func NewVehicle(id kernel.UUID, name string, vtype Type) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if err := vtype.Validate(); err != nil {
		return nil, err
	}

	return &Vehicle{
		id:     id,
		name:   name,
		vtype:  vtype,
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage,
// preserving its reservation state.
func RestoreVehicle(id kernel.UUID, name string, vtype Type, status VehicleStatus) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if err := errors.Join(vtype.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Vehicle{
		id:     id,
		name:   name,
		vtype:  vtype,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Vehicle instance was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Name returns the registration name of the vehicle (typically the plate number).
func (v *Vehicle) Name() string {
	return v.name
}

// Type returns the vehicle type.
func (v *Vehicle) Type() Type {
	return v.vtype
}

// Status returns the current reservation status.
func (v *Vehicle) Status() VehicleStatus {
	return v.status
}

// Reserve attaches the vehicle to a claim.
// Fails with ErrVehicleNotAvailable when the vehicle is already reserved, which
// is how the losing side of a vehicle race observes the conflict.
func (v *Vehicle) Reserve() error {
	if v.status != Available {
		return fmt.Errorf("%w: %s", ErrVehicleNotAvailable, v.name)
	}
	v.status = Reserved
	return nil
}

// Release frees the vehicle when its delivery reaches a terminal status.
// Mandatory and transactional with that terminal transition.
func (v *Vehicle) Release() error {
	if v.status != Reserved {
		return fmt.Errorf("%w: %s", ErrVehicleNotReserved, v.name)
	}
	v.status = Available
	return nil
}
