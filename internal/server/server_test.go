package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileshkr/creditsense/internal/config"
	"github.com/nileshkr/creditsense/internal/database"
	"github.com/nileshkr/creditsense/internal/modules/advisor"
	"github.com/nileshkr/creditsense/internal/modules/affordability"
	"github.com/nileshkr/creditsense/internal/modules/analysis"
	"github.com/nileshkr/creditsense/internal/modules/creditscore"
	"github.com/nileshkr/creditsense/internal/modules/history"
	"github.com/nileshkr/creditsense/internal/modules/recommendations"
)

// testServer builds a fully wired server backed by an in-memory database.
func testServer(t *testing.T) *Server {
	t.Helper()
	log := zerolog.Nop()

	db, err := database.New(database.Config{
		Path: filepath.Join(t.TempDir(), "test.db"),
		Name: "creditsense-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	catalogRepo := recommendations.NewCatalogRepository(db.Conn(), log)
	require.NoError(t, catalogRepo.EnsureSchema())
	require.NoError(t, catalogRepo.Seed(recommendations.DefaultCatalog()))

	historyRepo := history.NewRepository(db.Conn(), log)
	require.NoError(t, historyRepo.EnsureSchema())

	analyzer := creditscore.NewAnalyzer(creditscore.DefaultConfig())
	affordSvc := affordability.NewService(affordability.DefaultConfig())
	recommender := recommendations.NewService(recommendations.DefaultScoringWeights())
	analysisSvc := analysis.NewService(analyzer, affordSvc, recommender, catalogRepo, log)
	advisorSvc := advisor.NewService(nil, log)

	return New(Config{
		Log:     log,
		DB:      db,
		Config:  &config.Config{DataDir: t.TempDir(), Port: 0},
		Port:    0,
		DevMode: true,

		CreditScoreHandler:     creditscore.NewHandler(analyzer, log),
		AffordabilityHandler:   affordability.NewHandler(affordSvc, log),
		RecommendationsHandler: recommendations.NewHandler(recommender, catalogRepo, log),
		AnalysisHandler:        analysis.NewHandler(analysisSvc, historyRepo, log),
		AdvisorHandler:         advisor.NewHandler(advisorSvc, analysisSvc, log),
		HistoryHandler:         history.NewHandler(historyRepo, log),
	})
}

const profileJSON = `{
	"credit_score": 720,
	"income": 125000,
	"loans": [
		{"type": "home", "lender": "HDFC", "amount": 4000000,
		 "current_balance": 3200000, "emi": 32000,
		 "interest_rate": 8.5, "tenure": 240, "remaining_tenure": 190}
	],
	"credit_cards": [
		{"issuer": "ICICI", "limit": 300000, "outstanding": 60000, "minimum_due": 3000}
	],
	"payment_history": [0, 0, 0, 0, 0, 0],
	"inquiries": 1
}`

func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "creditsense", body["service"])
}

func TestCreditScoreEndpoint(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/analysis/credit-score", profileJSON)
	require.Equal(t, http.StatusOK, rec.Code)

	var result creditscore.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 720, result.Score)
	assert.Equal(t, creditscore.BandGood, result.Band)
	assert.Len(t, result.Factors, 5)
}

func TestCreditScoreEndpointRejectsInvalidProfile(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/analysis/credit-score",
		`{"credit_score": 100, "income": 50000}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAffordabilityEndpoint(t *testing.T) {
	srv := testServer(t)

	body := `{"profile": ` + profileJSON + `,
		"proposal": {"principal": 500000, "annual_rate": 8.0, "tenure_months": 60}}`
	rec := doRequest(t, srv, http.MethodPost, "/api/analysis/affordability", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result affordability.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Greater(t, result.ProposedEMI, 0.0)
	assert.Len(t, result.Schedule, 60)
	assert.NotEmpty(t, result.Band)
}

func TestCatalogEndpoint(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/catalog", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var catalog []recommendations.CardCatalogEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	assert.Len(t, catalog, len(recommendations.DefaultCatalog()))
}

func TestFullAnalysisStoresSnapshot(t *testing.T) {
	srv := testServer(t)

	body := `{"profile": ` + profileJSON + `, "preferences": ["cashback"]}`
	rec := doRequest(t, srv, http.MethodPost, "/api/analysis/full", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var full struct {
		SnapshotID string           `json:"snapshot_id"`
		Report     *analysis.Report `json:"report"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &full))
	require.NotEmpty(t, full.SnapshotID)
	require.NotNil(t, full.Report)
	assert.NotEmpty(t, full.Report.Recommendations)

	// The stored snapshot is retrievable through the history API
	rec = doRequest(t, srv, http.MethodGet, "/api/history/"+full.SnapshotID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, 1, listing.Count)
}

func TestHistoryUnknownSnapshotReturns404(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, http.MethodGet,
		"/api/history/00000000-0000-0000-0000-000000000000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdvisorUnavailableWithoutProvider(t *testing.T) {
	srv := testServer(t)

	body := `{"profile": ` + profileJSON + `, "question": "Should I prepay my home loan?"}`
	rec := doRequest(t, srv, http.MethodPost, "/api/advisor/ask", body)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSystemStatusEndpoint(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/system/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var status SystemStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "ok", status.Database)
}
