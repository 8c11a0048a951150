package advisor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/nileshkr/creditsense/internal/modules/analysis"
	"github.com/nileshkr/creditsense/pkg/formulas"
)

// Handler exposes the advisor over HTTP. Each question first runs the
// full analysis so the forwarded context always reflects the submitted
// profile.
type Handler struct {
	service  *Service
	analysis *analysis.Service
	log      zerolog.Logger
}

// NewHandler creates a new advisor handler.
func NewHandler(service *Service, analysisSvc *analysis.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service:  service,
		analysis: analysisSvc,
		log:      log.With().Str("handler", "advisor").Logger(),
	}
}

// AskRequest is an analysis request plus the user's free-form question.
type AskRequest struct {
	analysis.Request
	Question string `json:"question"`
}

// AskResponse carries the advisor's textual answer.
type AskResponse struct {
	Answer string `json:"answer"`
}

// Ask handles POST requests to the advisor.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	if !h.service.Available() {
		http.Error(w, "Advisor is not configured", http.StatusServiceUnavailable)
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Question == "" {
		http.Error(w, "Question is required", http.StatusBadRequest)
		return
	}

	report, err := h.analysis.Run(req.Request)
	if err != nil {
		if errors.Is(err, formulas.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.log.Error().Err(err).Msg("Analysis for advisor context failed")
		http.Error(w, "Analysis failed", http.StatusInternalServerError)
		return
	}

	answer, err := h.service.Ask(r.Context(), report.Profile,
		&report.CreditScore, report.Affordability, report.Recommendations, req.Question)
	if err != nil {
		h.log.Error().Err(err).Msg("Advisor request failed")
		http.Error(w, "Advisor is temporarily unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AskResponse{Answer: answer})
}
