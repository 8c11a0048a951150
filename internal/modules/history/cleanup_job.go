package history

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// RetentionJob prunes snapshots older than the configured retention window.
type RetentionJob struct {
	repo          *Repository
	retentionDays int
	log           zerolog.Logger
}

// NewRetentionJob creates a new snapshot retention job.
func NewRetentionJob(repo *Repository, retentionDays int, log zerolog.Logger) *RetentionJob {
	return &RetentionJob{
		repo:          repo,
		retentionDays: retentionDays,
		log:           log.With().Str("job", "snapshot_retention").Logger(),
	}
}

// Name returns the job name.
func (j *RetentionJob) Name() string {
	return "snapshot_retention"
}

// Run deletes snapshots older than the retention window.
func (j *RetentionJob) Run() error {
	cutoff := time.Now().AddDate(0, 0, -j.retentionDays)

	deleted, err := j.repo.DeleteOlderThan(cutoff)
	if err != nil {
		return fmt.Errorf("snapshot retention cleanup failed: %w", err)
	}

	if deleted > 0 {
		j.log.Info().
			Int64("deleted", deleted).
			Int("retention_days", j.retentionDays).
			Msg("Pruned old analysis snapshots")
	}

	return nil
}
