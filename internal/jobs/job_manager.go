package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleClaimJob         *StaleClaimJob
	attendanceRolloverJob *AttendanceRolloverJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	staleDeliveriesHandler queries.GetStaleDeliveriesQueryHandler,
	openAttendanceHandler queries.GetOpenAttendanceQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleClaimJob:         NewStaleClaimJob(staleDeliveriesHandler, logger),
		attendanceRolloverJob: NewAttendanceRolloverJob(openAttendanceHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleClaimJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale claim job: %w", err)
	}

	if err := jm.attendanceRolloverJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleClaimJob.Stop()
		return fmt.Errorf("failed to start attendance rollover job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.attendanceRolloverJob.Stop()
	jm.staleClaimJob.Stop()
}
