package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"interviewcoach/api/internal/archive"
	"interviewcoach/api/internal/middleware"
	"interviewcoach/api/internal/models"
	"interviewcoach/api/internal/session"
	"interviewcoach/api/internal/utils"
)

type SessionHandler struct {
	store   *session.Store
	archive *archive.Manager
	logger  *zap.Logger
}

func NewSessionHandler(store *session.Store, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		store:  store,
		logger: logger,
	}
}

// SetArchiveManager enables archiving of ended sessions
func (h *SessionHandler) SetArchiveManager(manager *archive.Manager) {
	h.archive = manager
}

// CreateHandler handles POST /api/v1/sessions
func (h *SessionHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateSessionRequest](r)

	profile := req.Profile()
	id := h.store.Create(profile)

	h.logger.Info("Session created",
		zap.String("session_id", id),
		zap.String("career_field", profile.CareerField),
		zap.String("interview_type", profile.InterviewType))

	utils.JSON(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID: id,
		Profile:   profile,
	})
}

// GetHandler handles GET /api/v1/sessions/{session_id}
func (h *SessionHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")

	view, ok := h.store.Get(id)
	if !ok {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Session not found or expired",
		})
		return
	}

	utils.JSON(w, http.StatusOK, view)
}

// SummaryHandler handles GET /api/v1/sessions/{session_id}/summary
func (h *SessionHandler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")

	summary, ok := h.store.Summary(id)
	if !ok {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Session not found or expired",
		})
		return
	}

	utils.JSON(w, http.StatusOK, summary)
}

// EndHandler handles POST /api/v1/sessions/{session_id}/end. The session
// is marked complete but kept in the store; restart deletes it.
func (h *SessionHandler) EndHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")

	view, ok := h.store.Get(id)
	if !ok {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Session not found or expired",
		})
		return
	}

	summary, _ := h.store.Summary(id)

	complete := true
	h.store.Update(id, session.Updates{Complete: &complete})

	if h.archive != nil {
		if err := h.archive.Store(id, view.Profile, summary); err != nil {
			h.logger.Error("Failed to archive session", zap.Error(err), zap.String("session_id", id))
		}
	}

	h.logger.Info("Session ended",
		zap.String("session_id", id),
		zap.Int("total_questions", summary.TotalQuestions))

	utils.JSON(w, http.StatusOK, models.SessionActionResponse{
		Message: "Session ended successfully",
	})
}

// RestartHandler handles POST /api/v1/sessions/{session_id}/restart.
// Deleting an unknown session is not an error.
func (h *SessionHandler) RestartHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")

	h.store.Delete(id)

	utils.JSON(w, http.StatusOK, models.SessionActionResponse{
		Message: "Session restarted",
	})
}
