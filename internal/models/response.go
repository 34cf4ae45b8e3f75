package models

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// lets validation errors be returned directly from Validate()
func (e *ErrorResponse) Error() string {
	return e.Message
}

// returned on session creation
type CreateSessionResponse struct {
	SessionID string      `json:"session_id"`
	Profile   UserProfile `json:"profile"`
}

// returned by the question generation endpoint
type QuestionResponse struct {
	Question   string `json:"question"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// returned by the role questions endpoint
type RoleQuestionsResponse struct {
	Questions []string `json:"questions"`
	Role      string   `json:"role"`
	Count     int      `json:"count"`
}

// returned by the Q&A feedback endpoint
type QAFeedbackResponse struct {
	Feedback string `json:"feedback"`
	Role     string `json:"role"`
	QACount  int    `json:"qa_count"`
}

// returned by the end/restart session endpoints
type SessionActionResponse struct {
	Message string `json:"message"`
}

// static configuration exposed to clients (setup forms)
type MetaResponse struct {
	Categories       []string `json:"categories"`
	DifficultyLevels []string `json:"difficulty_levels"`
	CareerFields     []string `json:"career_fields"`
}
