package handlers

import (
	"net/http"
	"strconv"

	"interviewcoach/api/internal/archive"
	"interviewcoach/api/internal/models"
	"interviewcoach/api/internal/utils"
)

type ArchiveHandler struct {
	manager *archive.Manager
}

func NewArchiveHandler(manager *archive.Manager) *ArchiveHandler {
	return &ArchiveHandler{manager: manager}
}

// RecentHandler handles GET /api/v1/archive/recent?limit=N
func (h *ArchiveHandler) RecentHandler(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := h.manager.Recent(limit)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "archive_error",
			Message: "Failed to query archived sessions",
		})
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"sessions": records,
		"count":    len(records),
	})
}

// StatsHandler handles GET /api/v1/archive/stats
func (h *ArchiveHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.manager.Stats()
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "archive_error",
			Message: "Failed to compute archive stats",
		})
		return
	}

	utils.JSON(w, http.StatusOK, stats)
}
