package symptomcheck

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

// RetentionPeriod defines how long symptom-check history is retained (3 years).
// The API never deletes rows; retention is enforced by the cleanup job only.
const RetentionPeriod = 3 * 365 * 24 * time.Hour

// CleanupService permanently deletes symptom-check rows past retention
type CleanupService struct {
	db *sql.DB
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(db *sql.DB) *CleanupService {
	return &CleanupService{db: db}
}

// GetExpiredChecksCount returns how many rows are past retention
func (s *CleanupService) GetExpiredChecksCount(ctx context.Context) (int, error) {
	cutoffDate := time.Now().Add(-RetentionPeriod)

	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM symptom_checks WHERE created_at < $1`,
		cutoffDate,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count expired symptom checks: %w", err)
	}

	return count, nil
}

// CleanupExpiredChecks permanently deletes symptom-check rows older than the
// retention period and returns how many were removed.
func (s *CleanupService) CleanupExpiredChecks(ctx context.Context) (int, error) {
	cutoffDate := time.Now().Add(-RetentionPeriod)
	log.Printf("Starting cleanup of symptom checks created before %s", cutoffDate.Format(time.RFC3339))

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM symptom_checks WHERE created_at < $1`,
		cutoffDate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired symptom checks: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return int(deleted), nil
}
