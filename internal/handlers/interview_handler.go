package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"interviewcoach/api/internal/llm"
	"interviewcoach/api/internal/middleware"
	"interviewcoach/api/internal/models"
	"interviewcoach/api/internal/session"
	"interviewcoach/api/internal/utils"
)

type InterviewHandler struct {
	gateway *llm.Gateway
	store   *session.Store
	logger  *zap.Logger
}

func NewInterviewHandler(gateway *llm.Gateway, store *session.Store, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		gateway: gateway,
		store:   store,
		logger:  logger,
	}
}

// QuestionHandler handles POST /api/v1/interview/question. The difficulty
// always comes from the session, never from the request.
func (h *InterviewHandler) QuestionHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.GenerateQuestionRequest](r)

	view, ok := h.store.Get(req.SessionID)
	if !ok {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "no_active_session",
			Message: "No active session",
		})
		return
	}

	difficulty := view.DifficultyLevel
	question := h.gateway.GenerateQuestion(r.Context(), view.Profile, req.Category, difficulty)

	h.store.Update(req.SessionID, session.Updates{
		CurrentQuestion: &question,
		Category:        &req.Category,
	})

	h.logger.Info("Question generated",
		zap.String("session_id", req.SessionID),
		zap.String("category", req.Category),
		zap.String("difficulty", difficulty),
		zap.String("provider", h.gateway.ProviderName()))

	utils.JSON(w, http.StatusOK, models.QuestionResponse{
		Question:   question,
		Category:   req.Category,
		Difficulty: difficulty,
	})
}

// EvaluateHandler handles POST /api/v1/interview/evaluate. The question
// being answered is the session's current question.
func (h *InterviewHandler) EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.EvaluateResponseRequest](r)

	view, ok := h.store.Get(req.SessionID)
	if !ok {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "no_active_session",
			Message: "No active session",
		})
		return
	}

	if view.CurrentQuestion == "" {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "missing_question",
			Message: "No current question to evaluate a response against",
		})
		return
	}

	evaluation := h.gateway.EvaluateResponse(r.Context(), view.CurrentQuestion, req.Response, req.Category)

	if !h.store.AddResponse(req.SessionID, view.CurrentQuestion, req.Response, evaluation) {
		// session expired between the lookup and the append
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "no_active_session",
			Message: "Session expired",
		})
		return
	}

	h.logger.Info("Response evaluated",
		zap.String("session_id", req.SessionID),
		zap.String("category", req.Category),
		zap.Int("score", evaluation.Score))

	utils.JSON(w, http.StatusOK, evaluation)
}

// RoleQuestionsHandler handles POST /api/v1/interview/role-questions.
// No session required.
func (h *InterviewHandler) RoleQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.RoleQuestionsRequest](r)

	questions := h.gateway.GenerateRoleQuestions(r.Context(), req.Role, req.NumQuestions)

	h.logger.Info("Role questions generated",
		zap.String("role", req.Role),
		zap.Int("count", len(questions)))

	utils.JSON(w, http.StatusOK, models.RoleQuestionsResponse{
		Questions: questions,
		Role:      req.Role,
		Count:     len(questions),
	})
}

// QAFeedbackHandler handles POST /api/v1/interview/qa-feedback.
func (h *InterviewHandler) QAFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.QAFeedbackRequest](r)

	pairs := req.Pairs()
	feedback := h.gateway.GenerateQAFeedback(r.Context(), pairs, req.Role)

	h.logger.Info("Q&A feedback generated",
		zap.String("role", req.Role),
		zap.Int("qa_count", len(pairs)))

	utils.JSON(w, http.StatusOK, models.QAFeedbackResponse{
		Feedback: feedback,
		Role:     req.Role,
		QACount:  len(pairs),
	})
}
