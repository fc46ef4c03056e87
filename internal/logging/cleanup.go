package logging

import (
	"log/slog"
	"time"

	"github.com/shoplist/backend/internal/models"
	"gorm.io/gorm"
)

const defaultLogRetentionDays = 30

// StartCleanup runs a daily goroutine that deletes system_logs older than the
// retention window. Non-positive retention falls back to the default so a
// misconfigured environment never wipes fresh logs.
func StartCleanup(db *gorm.DB, retentionDays int, done chan struct{}) {
	if retentionDays <= 0 {
		retentionDays = defaultLogRetentionDays
	}
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n, err := purgeOldLogs(db, retentionDays, time.Now()); err != nil {
					slog.Error("log cleanup failed", "error", err)
				} else if n > 0 {
					slog.Info("log cleanup completed", "deleted", n, "retention_days", retentionDays)
				}
			case <-done:
				return
			}
		}
	}()
}

func purgeOldLogs(db *gorm.DB, retentionDays int, now time.Time) (int64, error) {
	cutoff := now.AddDate(0, 0, -retentionDays)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}
