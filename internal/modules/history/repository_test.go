package history

import (
	"database/sql"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/nileshkr/creditsense/internal/domain"
	"github.com/nileshkr/creditsense/internal/modules/analysis"
	"github.com/nileshkr/creditsense/internal/modules/creditscore"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewRepository(db, zerolog.Nop())
	require.NoError(t, repo.EnsureSchema())
	return repo
}

func testReport() *analysis.Report {
	profile := domain.Profile{
		CreditScore: 760,
		Income:      125000,
		Loans: []domain.Loan{{
			Type: "home", Lender: "HDFC", Amount: 4000000,
			CurrentBalance: 3200000, EMI: 32000,
			InterestRate: 8.5, TenureMonths: 240, RemainingTenure: 190,
		}},
		PaymentHistory: []int{0, 0, 0, 0, 0, 0},
	}
	profile.Normalize()

	return &analysis.Report{
		Profile: profile,
		CreditScore: creditscore.Analysis{
			Score: 760,
			Band:  creditscore.BandExcellent,
		},
	}
}

func TestRepository_SaveAndGet(t *testing.T) {
	repo := testRepo(t)
	report := testReport()

	id, err := repo.Save(report)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	snap, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, id, snap.UUID)
	assert.Equal(t, report.Profile.Fingerprint(), snap.ProfileHash)
	assert.Equal(t, creditscore.BandExcellent, snap.Band)
	require.NotNil(t, snap.Report)
	assert.Equal(t, report.CreditScore.Score, snap.Report.CreditScore.Score)
	assert.Equal(t, report.Profile.Income, snap.Report.Profile.Income)
	assert.Len(t, snap.Report.Profile.Loans, 1)
}

func TestRepository_GetUnknownReturnsNil(t *testing.T) {
	repo := testRepo(t)

	snap, err := repo.Get("00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestRepository_ListNewestFirst(t *testing.T) {
	repo := testRepo(t)
	report := testReport()

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := repo.Save(report)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	infos, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, infos, 3)

	for i := 1; i < len(infos); i++ {
		assert.False(t, infos[i-1].CreatedAt.Before(infos[i].CreatedAt),
			"listing must be newest first")
	}

	saved := map[string]bool{}
	for _, info := range infos {
		saved[info.UUID] = true
	}
	for _, id := range ids {
		assert.True(t, saved[id])
	}
}

func TestRepository_ListHonorsLimit(t *testing.T) {
	repo := testRepo(t)
	report := testReport()

	for i := 0; i < 5; i++ {
		_, err := repo.Save(report)
		require.NoError(t, err)
	}

	infos, err := repo.List(2)
	require.NoError(t, err)
	assert.Len(t, infos, 2)
}

func TestRepository_DeleteOlderThan(t *testing.T) {
	repo := testRepo(t)
	report := testReport()

	id, err := repo.Save(report)
	require.NoError(t, err)

	// Cutoff in the past: nothing qualifies for deletion.
	deleted, err := repo.DeleteOlderThan(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, deleted)

	// Cutoff in the future: everything goes.
	deleted, err = repo.DeleteOlderThan(time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	snap, err := repo.Get(id)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestRetentionJob_Run(t *testing.T) {
	repo := testRepo(t)
	_, err := repo.Save(testReport())
	require.NoError(t, err)

	job := NewRetentionJob(repo, 30, zerolog.Nop())
	assert.Equal(t, "snapshot_retention", job.Name())
	require.NoError(t, job.Run())

	// A fresh snapshot survives a 30-day retention run.
	infos, err := repo.List(10)
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}
