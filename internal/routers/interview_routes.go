package routers

import (
	"github.com/go-chi/chi/v5"

	"interviewcoach/api/internal/handlers"
	"interviewcoach/api/internal/middleware"
	"interviewcoach/api/internal/models"
)

func InterviewRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler) {
	router.Route("/api/v1/interview", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.GenerateQuestionRequest]()).Post("/question", interviewHandler.QuestionHandler)
		r.With(middleware.ValidateRequest[*models.EvaluateResponseRequest]()).Post("/evaluate", interviewHandler.EvaluateHandler)
		r.With(middleware.ValidateRequest[*models.RoleQuestionsRequest]()).Post("/role-questions", interviewHandler.RoleQuestionsHandler)
		r.With(middleware.ValidateRequest[*models.QAFeedbackRequest]()).Post("/qa-feedback", interviewHandler.QAFeedbackHandler)
	})
}
