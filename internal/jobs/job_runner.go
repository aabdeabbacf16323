package jobs

import (
	"context"
	"time"

	"rentman-backend/internal/config"
	"rentman-backend/internal/logger"
	"rentman-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs.
type JobRunner struct {
	reports service.ReportService
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies.
func NewJobRunner(reports service.ReportService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		reports: reports,
		config:  cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs all daily jobs (for manual execution).
func (jr *JobRunner) RunAllDailyJobs() {
	jr.DailyOpsDigest()
}

// DailyOpsDigest logs the branch operations summary for the day:
// scheduled pickups, scheduled returns, and rentals past their end
// date that have not come back yet.
func (jr *JobRunner) DailyOpsDigest() {
	jr.runWithRecovery("DailyOpsDigest", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		today := time.Now()

		pickups, err := jr.reports.PendingPickup(ctx, today)
		if err != nil {
			logger.Error("Failed to load pending pickups", "error", err)
			return
		}
		returns, err := jr.reports.PendingReturn(ctx, today)
		if err != nil {
			logger.Error("Failed to load pending returns", "error", err)
			return
		}
		overdue, err := jr.reports.Overdue(ctx, today)
		if err != nil {
			logger.Error("Failed to load overdue rentals", "error", err)
			return
		}

		logger.Info("Daily ops digest",
			"date", today.Format("2006-01-02"),
			"pickups", len(pickups),
			"returns", len(returns),
			"overdue", len(overdue))

		for _, res := range overdue {
			logger.Warn("Rental past its end date",
				"reservation", res.ReservationNumber,
				"vehicle_id", res.VehicleID,
				"end_date", res.EndDate.Format("2006-01-02"))
		}
	})
}
