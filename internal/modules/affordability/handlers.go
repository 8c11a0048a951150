package affordability

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/nileshkr/creditsense/internal/domain"
	"github.com/nileshkr/creditsense/pkg/formulas"
)

// Handler exposes the affordability engine over HTTP.
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new affordability handler.
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "affordability").Logger(),
	}
}

// AssessRequest is the request body: the profile plus the proposed loan.
type AssessRequest struct {
	Profile  domain.Profile `json:"profile"`
	Proposal Proposal       `json:"proposal"`
}

// Assess handles POST requests and responds with the full affordability
// assessment including the amortization schedule.
func (h *Handler) Assess(w http.ResponseWriter, r *http.Request) {
	var req AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Profile.Normalize()
	if err := req.Profile.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	result, err := h.service.Assess(req.Profile, req.Proposal)
	if err != nil {
		if errors.Is(err, formulas.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.log.Error().Err(err).Msg("Affordability assessment failed")
		http.Error(w, "Assessment failed", http.StatusInternalServerError)
		return
	}

	h.log.Debug().
		Float64("projected_dti", result.ProjectedDTI).
		Str("band", result.Band).
		Msg("Affordability assessed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}
