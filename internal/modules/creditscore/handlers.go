package creditscore

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/nileshkr/creditsense/internal/domain"
	"github.com/nileshkr/creditsense/pkg/formulas"
)

// Handler exposes the credit score analyzer over HTTP.
type Handler struct {
	analyzer *Analyzer
	log      zerolog.Logger
}

// NewHandler creates a new credit score handler.
func NewHandler(analyzer *Analyzer, log zerolog.Logger) *Handler {
	return &Handler{
		analyzer: analyzer,
		log:      log.With().Str("handler", "creditscore").Logger(),
	}
}

// Analyze handles POST requests carrying a profile document and responds
// with the full factor breakdown.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var profile domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile.Normalize()
	if err := profile.Validate(); err != nil {
		if errors.Is(err, formulas.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Validation failed", http.StatusInternalServerError)
		return
	}

	analysis := h.analyzer.Analyze(profile)

	h.log.Debug().
		Int("score", analysis.Score).
		Str("band", analysis.Band).
		Int("recommendations", len(analysis.Recommendations)).
		Msg("Credit score analyzed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(analysis)
}
