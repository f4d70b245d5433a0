package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jornadahq/jornada-backend-go/internal/pkg/database"
)

// VacationJobs holds the nightly vacation maintenance jobs.
//
// Balances are also rolled over lazily whenever a balance is read, so
// the sweep only exists to keep reporting queries honest for employees
// who never touch the app across a year boundary.
type VacationJobs struct {
	db *database.DB
}

func NewVacationJobs(db *database.DB) *VacationJobs {
	return &VacationJobs{db: db}
}

func (j *VacationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reset_vacation_years", 1*time.Hour, j.ResetVacationYears)
}

func (j *VacationJobs) ResetVacationYears(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	currentYear := time.Now().UTC().Year()

	tag, err := j.db.Pool.Exec(ctx, `
		UPDATE employees
		SET vacation_days_used = 0, vacation_year = $1, updated_at = NOW()
		WHERE vacation_year < $1
	`, currentYear)
	if err != nil {
		return fmt.Errorf("failed to reset vacation years: %w", err)
	}

	if tag.RowsAffected() > 0 {
		slog.Info("Cron: Reset vacation balances for new year",
			"year", currentYear,
			"count", tag.RowsAffected())
	}

	return nil
}
