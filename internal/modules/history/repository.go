// Package history stores finished analysis reports so the dashboard can
// show past runs. Snapshots are anonymous engine outputs keyed by a UUID
// and a profile fingerprint; no user identity or session state is kept.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/nileshkr/creditsense/internal/modules/analysis"
)

// Info is the snapshot listing row: metadata without the report payload.
type Info struct {
	UUID        string    `json:"uuid"`
	CreatedAt   time.Time `json:"created_at"`
	ProfileHash string    `json:"profile_hash"`
	Band        string    `json:"band"`
}

// Snapshot is a stored report with its metadata.
type Snapshot struct {
	Info
	Report *analysis.Report `json:"report"`
}

// Repository handles snapshot storage. Report payloads are encoded with
// msgpack into a blob column; listing queries never touch the payload.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new history repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "history").Logger(),
	}
}

// EnsureSchema creates the snapshots table if it does not exist.
func (r *Repository) EnsureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS analysis_snapshots (
			uuid         TEXT PRIMARY KEY,
			created_at   INTEGER NOT NULL,
			profile_hash TEXT NOT NULL,
			band         TEXT NOT NULL,
			payload      BLOB NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create analysis_snapshots table: %w", err)
	}
	_, err = r.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_snapshots_created_at
		ON analysis_snapshots (created_at)
	`)
	if err != nil {
		return fmt.Errorf("failed to create snapshot index: %w", err)
	}
	return nil
}

// Save stores a report and returns the new snapshot's UUID.
func (r *Repository) Save(report *analysis.Report) (string, error) {
	payload, err := msgpack.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	id := uuid.New().String()
	_, err = r.db.Exec(`
		INSERT INTO analysis_snapshots (uuid, created_at, profile_hash, band, payload)
		VALUES (?, ?, ?, ?, ?)
	`, id, time.Now().Unix(), report.Profile.Fingerprint(), report.CreditScore.Band, payload)
	if err != nil {
		return "", fmt.Errorf("failed to store snapshot: %w", err)
	}

	r.log.Debug().Str("uuid", id).Msg("Analysis snapshot stored")
	return id, nil
}

// Get retrieves one snapshot by UUID. Returns nil, nil if not found.
func (r *Repository) Get(id string) (*Snapshot, error) {
	var (
		snap      Snapshot
		createdAt int64
		payload   []byte
	)
	err := r.db.QueryRow(`
		SELECT uuid, created_at, profile_hash, band, payload
		FROM analysis_snapshots
		WHERE uuid = ?
	`, id).Scan(&snap.UUID, &createdAt, &snap.ProfileHash, &snap.Band, &payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot %s: %w", id, err)
	}

	snap.CreatedAt = time.Unix(createdAt, 0).UTC()

	var report analysis.Report
	if err := msgpack.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", id, err)
	}
	snap.Report = &report

	return &snap, nil
}

// List returns snapshot metadata, newest first, capped at limit.
func (r *Repository) List(limit int) ([]Info, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(`
		SELECT uuid, created_at, profile_hash, band
		FROM analysis_snapshots
		ORDER BY created_at DESC, uuid
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	infos := make([]Info, 0)
	for rows.Next() {
		var (
			info      Info
			createdAt int64
		)
		if err := rows.Scan(&info.UUID, &createdAt, &info.ProfileHash, &info.Band); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		info.CreatedAt = time.Unix(createdAt, 0).UTC()
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshot rows: %w", err)
	}

	return infos, nil
}

// DeleteOlderThan removes snapshots created before the cutoff and returns
// the number of rows removed.
func (r *Repository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(
		"DELETE FROM analysis_snapshots WHERE created_at < ?", cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete old snapshots: %w", err)
	}
	return result.RowsAffected()
}
