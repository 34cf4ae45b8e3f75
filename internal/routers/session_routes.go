package routers

import (
	"github.com/go-chi/chi/v5"

	"interviewcoach/api/internal/handlers"
	"interviewcoach/api/internal/middleware"
	"interviewcoach/api/internal/models"
)

func SessionRoutes(router *chi.Mux, sessionHandler *handlers.SessionHandler) {
	router.Route("/api/v1/sessions", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.CreateSessionRequest]()).Post("/", sessionHandler.CreateHandler)
		r.Get("/{session_id}", sessionHandler.GetHandler)
		r.Get("/{session_id}/summary", sessionHandler.SummaryHandler)
		r.Post("/{session_id}/end", sessionHandler.EndHandler)
		r.Post("/{session_id}/restart", sessionHandler.RestartHandler)
	})
}

func ArchiveRoutes(router *chi.Mux, archiveHandler *handlers.ArchiveHandler) {
	router.Route("/api/v1/archive", func(r chi.Router) {
		r.Get("/recent", archiveHandler.RecentHandler)
		r.Get("/stats", archiveHandler.StatsHandler)
	})
}
