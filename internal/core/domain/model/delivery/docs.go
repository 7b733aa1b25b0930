// Package delivery contains the Delivery aggregate root and its lifecycle state
// machine. A delivery enters the shared pool from an external invoicing step,
// is claimed by exactly one worker together with exactly one vehicle, and then
// moves through OutForDelivery, optionally Delayed, to a terminal Completed or
// Canceled status.
//
// All lifecycle mutations go through aggregate methods that validate the
// transition and, for worker actions, ownership. The package deliberately knows
// nothing about persistence; the postgres adapter enforces the concurrent-claim
// guarantees with conditional updates keyed on the expected pre-state.
package delivery
