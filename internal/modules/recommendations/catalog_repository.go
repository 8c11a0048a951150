package recommendations

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// CatalogRepository handles storage of the card catalog. The catalog is
// static reference data: seeded once on first start, read per analysis
// request, never written by the engines.
type CatalogRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *sql.DB, log zerolog.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:  db,
		log: log.With().Str("repository", "catalog").Logger(),
	}
}

// EnsureSchema creates the catalog table if it does not exist.
// Benefit tags are stored as a JSON array in a text column.
func (r *CatalogRepository) EnsureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS card_catalog (
			name             TEXT PRIMARY KEY,
			issuer           TEXT NOT NULL,
			category         TEXT NOT NULL,
			min_credit_score INTEGER NOT NULL,
			min_income       REAL NOT NULL,
			annual_fee       REAL NOT NULL,
			benefit_tags     TEXT NOT NULL DEFAULT '[]',
			reward_rate      REAL NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create card_catalog table: %w", err)
	}
	return nil
}

// Seed inserts catalog entries, replacing existing rows with the same
// name. Used at startup to load the built-in catalog.
func (r *CatalogRepository) Seed(entries []CardCatalogEntry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, entry := range entries {
		tags, err := json.Marshal(entry.BenefitTags)
		if err != nil {
			return fmt.Errorf("failed to encode benefit tags for %s: %w", entry.Name, err)
		}

		_, err = tx.Exec(`
			INSERT INTO card_catalog
				(name, issuer, category, min_credit_score, min_income, annual_fee, benefit_tags, reward_rate)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				issuer = excluded.issuer,
				category = excluded.category,
				min_credit_score = excluded.min_credit_score,
				min_income = excluded.min_income,
				annual_fee = excluded.annual_fee,
				benefit_tags = excluded.benefit_tags,
				reward_rate = excluded.reward_rate
		`, entry.Name, entry.Issuer, entry.Category, entry.MinCreditScore,
			entry.MinIncome, entry.AnnualFee, string(tags), entry.RewardRate)
		if err != nil {
			return fmt.Errorf("failed to seed catalog entry %s: %w", entry.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	r.log.Info().Int("entries", len(entries)).Msg("Card catalog seeded")
	return nil
}

// All returns every catalog entry, ordered by name for a stable catalog
// sequence across requests.
func (r *CatalogRepository) All() ([]CardCatalogEntry, error) {
	rows, err := r.db.Query(`
		SELECT name, issuer, category, min_credit_score, min_income, annual_fee, benefit_tags, reward_rate
		FROM card_catalog
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query card catalog: %w", err)
	}
	defer rows.Close()

	entries := make([]CardCatalogEntry, 0)
	for rows.Next() {
		var entry CardCatalogEntry
		var tags string
		if err := rows.Scan(&entry.Name, &entry.Issuer, &entry.Category, &entry.MinCreditScore,
			&entry.MinIncome, &entry.AnnualFee, &tags, &entry.RewardRate); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &entry.BenefitTags); err != nil {
			r.log.Warn().Err(err).Str("card", entry.Name).Msg("Invalid benefit tags, skipping tags")
			entry.BenefitTags = []string{}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog rows: %w", err)
	}

	return entries, nil
}

// Count returns the number of catalog entries.
func (r *CatalogRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM card_catalog").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count catalog entries: %w", err)
	}
	return count, nil
}
