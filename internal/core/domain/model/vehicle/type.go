package vehicle

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Type classifies a fleet vehicle. The type is informational for the claim
// dialog (a worker picks a vehicle that fits the load); it does not constrain
// transitions.
type Type int

const (
	// TypeUnknown represents an invalid or undefined vehicle type.
	TypeUnknown Type = iota

	// Van is the default box van used for most equipment deliveries.
	Van

	// Motorcycle is used for small-item deliveries.
	Motorcycle

	// Truck is used for bulk equipment moves.
	Truck
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "Unknown",
		Van:         "Van",
		Motorcycle:  "Motorcycle",
		Truck:       "Truck",
	}
}

// TypeFromString parses a vehicle type from its string form.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%q is not a valid type", s))
}

// Validate checks if the Type value is one of the defined vehicle types.
func (t Type) Validate() error {
	if t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%d is not a valid type", t))
	}
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%d is not a valid type", t))
	}
	return nil
}

// String returns the human-readable name of the vehicle type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// VehicleStatus represents the reservation state of a vehicle.
// A vehicle toggles Available ⇄ Reserved for its lifetime.
type VehicleStatus int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown VehicleStatus = iota

	// Available means the vehicle can be picked for a claim.
	Available

	// Reserved means the vehicle is attached to exactly one non-terminal delivery.
	Reserved
)

func getStatusStrings() map[VehicleStatus]string {
	return map[VehicleStatus]string{
		StatusUnknown: "Unknown",
		Available:     "Available",
		Reserved:      "Reserved",
	}
}

// Validate checks if the VehicleStatus value is valid.
func (s VehicleStatus) Validate() error {
	if s != Available && s != Reserved {
		return errs.NewValueIsInvalidErrorWithCause("vehicle status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s VehicleStatus) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
