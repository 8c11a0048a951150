package analysis

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/nileshkr/creditsense/pkg/formulas"
)

// SnapshotStore persists finished reports. Implemented by the history
// repository; kept as an interface here so the engine layer stays free of
// storage concerns.
type SnapshotStore interface {
	Save(report *Report) (string, error)
}

// Handler exposes the full-analysis endpoint.
type Handler struct {
	service   *Service
	snapshots SnapshotStore
	log       zerolog.Logger
}

// NewHandler creates a new analysis handler. snapshots may be nil to
// disable persistence.
func NewHandler(service *Service, snapshots SnapshotStore, log zerolog.Logger) *Handler {
	return &Handler{
		service:   service,
		snapshots: snapshots,
		log:       log.With().Str("handler", "analysis").Logger(),
	}
}

// FullResponse carries the report and, when persistence is enabled, the
// identifier of the stored snapshot.
type FullResponse struct {
	SnapshotID string  `json:"snapshot_id,omitempty"`
	Report     *Report `json:"report"`
}

// Full handles POST requests running all three engines in one pass.
func (h *Handler) Full(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	report, err := h.service.Run(req)
	if err != nil {
		if errors.Is(err, formulas.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.log.Error().Err(err).Msg("Analysis run failed")
		http.Error(w, "Analysis failed", http.StatusInternalServerError)
		return
	}

	response := FullResponse{Report: report}
	if h.snapshots != nil {
		id, err := h.snapshots.Save(report)
		if err != nil {
			// Persistence is best-effort; the analysis itself succeeded
			h.log.Warn().Err(err).Msg("Failed to store analysis snapshot")
		} else {
			response.SnapshotID = id
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
