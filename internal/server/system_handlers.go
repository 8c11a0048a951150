package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/nileshkr/creditsense/internal/database"
)

// SystemHandlers handles system-wide monitoring endpoints
type SystemHandlers struct {
	log         zerolog.Logger
	dataDir     string
	db          *database.DB
	startupTime time.Time
}

// NewSystemHandlers creates new system handlers
func NewSystemHandlers(log zerolog.Logger, dataDir string, db *database.DB) *SystemHandlers {
	return &SystemHandlers{
		log:         log.With().Str("handler", "system").Logger(),
		dataDir:     dataDir,
		db:          db,
		startupTime: time.Now(),
	}
}

// SystemStatusResponse is the system status payload
type SystemStatusResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	CPUPercent    float64 `json:"cpu_percent"`
	RAMPercent    float64 `json:"ram_percent"`
	Database      string  `json:"database"`
	LastChecked   string  `json:"last_checked"`
}

// HandleSystemStatus returns comprehensive system status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	cpuPct, ramPct := h.getSystemStats()

	dbStatus := "ok"
	if err := h.db.QuickCheck(r.Context()); err != nil {
		h.log.Warn().Err(err).Msg("Database quick check failed")
		dbStatus = "unreachable"
	}

	status := "healthy"
	if dbStatus != "ok" {
		status = "degraded"
	}

	response := SystemStatusResponse{
		Status:        status,
		UptimeSeconds: time.Since(h.startupTime).Seconds(),
		CPUPercent:    cpuPct,
		RAMPercent:    ramPct,
		Database:      dbStatus,
		LastChecked:   time.Now().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// DatabaseStatsResponse is the database stats payload
type DatabaseStatsResponse struct {
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	SizeMB      float64 `json:"size_mb"`
	WALSizeMB   float64 `json:"wal_size_mb"`
	PageCount   int64   `json:"page_count"`
	PageSize    int64   `json:"page_size"`
	DataDirMB   float64 `json:"data_dir_mb"`
	LastChecked string  `json:"last_checked"`
}

// HandleDatabaseStats returns database statistics
func (h *SystemHandlers) HandleDatabaseStats(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting database stats")

	stats, err := h.db.GetStats()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to collect database stats")
		http.Error(w, "Failed to collect database stats", http.StatusInternalServerError)
		return
	}

	response := DatabaseStatsResponse{
		Name:        h.db.Name(),
		Path:        h.db.Path(),
		SizeMB:      float64(stats.SizeBytes) / 1024 / 1024,
		WALSizeMB:   float64(stats.WALSizeBytes) / 1024 / 1024,
		PageCount:   stats.PageCount,
		PageSize:    stats.PageSize,
		DataDirMB:   h.getDirSize(h.dataDir),
		LastChecked: time.Now().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// getDirSize calculates total size of a directory in MB
func (h *SystemHandlers) getDirSize(dirPath string) float64 {
	var totalSize int64

	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if !info.IsDir() {
			totalSize += info.Size()
		}
		return nil
	})

	if err != nil {
		h.log.Warn().Err(err).Str("dir", dirPath).Msg("Failed to calculate directory size")
		return 0
	}

	return float64(totalSize) / 1024 / 1024
}

// getSystemStats calculates CPU and RAM usage percentages
// Uses a short interval (100ms) so the status endpoint stays responsive
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
