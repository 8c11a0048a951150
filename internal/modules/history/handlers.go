package history

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler exposes stored analysis snapshots over HTTP.
type Handler struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandler creates a new history handler.
func NewHandler(repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "history").Logger(),
	}
}

// List handles GET requests and returns snapshot metadata, newest first.
// Supports an optional ?limit= query parameter (default 50, max 500).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		if parsed > 500 {
			parsed = 500
		}
		limit = parsed
	}

	infos, err := h.repo.List(limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list snapshots")
		http.Error(w, "Failed to list snapshots", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"snapshots": infos,
		"count":     len(infos),
	})
}

// Get handles GET requests for a single snapshot by UUID.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")
	if id == "" {
		http.Error(w, "Missing snapshot UUID", http.StatusBadRequest)
		return
	}

	snap, err := h.repo.Get(id)
	if err != nil {
		h.log.Error().Err(err).Str("uuid", id).Msg("Failed to load snapshot")
		http.Error(w, "Failed to load snapshot", http.StatusInternalServerError)
		return
	}
	if snap == nil {
		http.Error(w, "Snapshot not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(snap)
}
