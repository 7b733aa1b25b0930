// Package vehicle contains the Vehicle aggregate of the dispatch engine.
// The fleet registry enforces vehicle exclusivity: a vehicle is Reserved iff it
// is attached to exactly one non-terminal delivery, and its Reserve/Release
// transitions only ever happen inside the claim coordinator's and state
// machine's atomic units.
package vehicle
