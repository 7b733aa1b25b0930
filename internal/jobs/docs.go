// Package jobs provides scheduled background tasks for the dispatch engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaleClaimJob - Runs every 15 minutes to report deliveries that were
// claimed but whose route never started.
// 2. AttendanceRolloverJob - Runs daily after midnight to report attendance
// records from previous days that were never checked out.
//
// Both jobs are monitoring only. They log findings for the operations console
// and never mutate state: stale claims are not re-pooled and open attendance
// records are not closed automatically.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(staleHandler, openAttendanceHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
