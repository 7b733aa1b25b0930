// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence with compare-and-set semantics, and post-commit event publishing.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries; each
// handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// WorkerRepoFactory provides access to the worker repository within a transaction.
	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	// AttendanceRepoFactory provides access to the attendance repository within a transaction.
	AttendanceRepoFactory interface {
		AttendanceRepository() ports.AttendanceRepository
	}

	// DeliveryLogRepoFactory provides access to the audit log repository within a transaction.
	DeliveryLogRepoFactory interface {
		DeliveryLogRepository() ports.DeliveryLogRepository
	}

	// DeliveryUoW manages transactions for single-delivery transitions that do
	// not touch the vehicle (start route, delay, archive).
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		DeliveryLogRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ClaimUoW manages the claim transaction. A claim touches every aggregate:
	// worker and attendance for the eligibility gate, delivery and vehicle for
	// the exclusive assignment, and the audit log.
	ClaimUoW interface {
		TxManager
		DeliveryRepoFactory
		VehicleRepoFactory
		WorkerRepoFactory
		AttendanceRepoFactory
		DeliveryLogRepoFactory
	}

	// ClaimUoWFactory creates new claim unit of work instances.
	ClaimUoWFactory interface {
		Create() ClaimUoW
	}

	// ReleaseUoW manages terminal transitions (complete, cancel) that must
	// release the paired vehicle in the same transaction as the status write.
	ReleaseUoW interface {
		TxManager
		DeliveryRepoFactory
		VehicleRepoFactory
		DeliveryLogRepoFactory
	}

	// ReleaseUoWFactory creates new release unit of work instances.
	ReleaseUoWFactory interface {
		Create() ReleaseUoW
	}

	// AttendanceUoW manages check-in/check-out transactions.
	AttendanceUoW interface {
		TxManager
		WorkerRepoFactory
		AttendanceRepoFactory
	}

	// AttendanceUoWFactory creates new attendance unit of work instances.
	AttendanceUoWFactory interface {
		Create() AttendanceUoW
	}

	// LogUoW manages audit entry revisions.
	LogUoW interface {
		TxManager
		DeliveryLogRepoFactory
	}

	// LogUoWFactory creates new log unit of work instances.
	LogUoWFactory interface {
		Create() LogUoW
	}

	// VehicleUoW manages vehicle seeding by operations staff.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// WorkerUoW manages worker seeding by operations staff.
	WorkerUoW interface {
		TxManager
		WorkerRepoFactory
	}

	// WorkerUoWFactory creates new worker unit of work instances.
	WorkerUoWFactory interface {
		Create() WorkerUoW
	}
)
