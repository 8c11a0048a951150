package recommendations

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/nileshkr/creditsense/internal/domain"
)

// Handler exposes the recommendation engine and the card catalog over HTTP.
type Handler struct {
	service *Service
	catalog *CatalogRepository
	log     zerolog.Logger
}

// NewHandler creates a new recommendations handler.
func NewHandler(service *Service, catalog *CatalogRepository, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		catalog: catalog,
		log:     log.With().Str("handler", "recommendations").Logger(),
	}
}

// RecommendRequest is the request body: the profile plus the user's
// preferred benefit categories.
type RecommendRequest struct {
	Profile     domain.Profile `json:"profile"`
	Preferences []string       `json:"preferences"`
}

// RecommendResponse carries the full ranked recommendation sequence.
type RecommendResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// Recommend handles POST requests and responds with the ranked list, both
// eligible and ineligible entries.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Profile.Normalize()
	if err := req.Profile.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	catalog, err := h.catalog.All()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load card catalog")
		http.Error(w, "Failed to load card catalog", http.StatusInternalServerError)
		return
	}

	recs := h.service.Recommend(req.Profile, catalog, req.Preferences)

	h.log.Debug().
		Int("catalog_size", len(catalog)).
		Int("recommendations", len(recs)).
		Msg("Recommendations generated")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(RecommendResponse{Recommendations: recs})
}

// Catalog handles GET requests for the raw card catalog.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalog.All()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load card catalog")
		http.Error(w, "Failed to load card catalog", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(catalog)
}
