package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/attendance"

	"github.com/robfig/cron/v3"
)

// AttendanceRolloverJob reports attendance records left open past day rollover.
// Records are not auto-closed; an open record from a previous day is an
// operations follow-up, not a system action.
type AttendanceRolloverJob struct {
	handler queries.GetOpenAttendanceQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAttendanceRolloverJob creates the rollover reporter.
func NewAttendanceRolloverJob(handler queries.GetOpenAttendanceQueryHandler, logger *slog.Logger) *AttendanceRolloverJob {
	return &AttendanceRolloverJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "attendance_rollover_job"),
	}
}

// Start begins the reporter, running shortly after midnight every day.
func (j *AttendanceRolloverJob) Start() error {
	_, err := j.cron.AddFunc("5 0 * * *", func() {
		ctx := context.Background()

		query, qErr := queries.NewGetOpenAttendanceQuery(attendance.DayOf(time.Now().UTC()))
		if qErr != nil {
			j.logger.ErrorContext(ctx, "Attendance rollover job failed to build query", "error", qErr)
			return
		}

		open, hErr := j.handler.Handle(ctx, query)
		if hErr != nil {
			j.logger.ErrorContext(ctx, "Attendance rollover job failed", "error", hErr)
			return
		}

		for _, record := range open {
			j.logger.WarnContext(ctx, "Attendance record left open at day rollover",
				"record_id", record.ID.String(),
				"worker_id", record.WorkerID.String(),
				"day", record.Day.Format("2006-01-02"),
				"check_in", record.CheckIn,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Attendance rollover job started (running daily at 00:05)")
	return nil
}

// Stop stops the reporter.
func (j *AttendanceRolloverJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Attendance rollover job stopped")
}
