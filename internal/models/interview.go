package models

import "time"

// UserProfile describes the candidate a session is coaching.
// Immutable once attached to a session; changing it means a new session.
type UserProfile struct {
	Name            string `json:"name"`
	CareerField     string `json:"career_field"`
	ExperienceLevel string `json:"experience_level"`
	TargetRole      string `json:"target_role"`
	InterviewType   string `json:"interview_type"`
}

// EvaluationResult is the structured verdict on a single answer.
// Produced either by parsing LLM output or by a fixed fallback.
type EvaluationResult struct {
	Score            int      `json:"score"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	Feedback         string   `json:"feedback"`
	ImprovementAreas []string `json:"improvement_areas"`
	Resources        []string `json:"resources"`
}

// ResponseRecord is one answered question. Immutable once appended.
type ResponseRecord struct {
	Question   string           `json:"question"`
	Response   string           `json:"response"`
	Evaluation EvaluationResult `json:"evaluation"`
	Timestamp  time.Time        `json:"timestamp"`
}

// Summary aggregates a session's progress for the results view.
type Summary struct {
	TotalQuestions    int              `json:"total_questions"`
	AverageScore      float64          `json:"average_score"`
	CategoriesCovered []string         `json:"categories_covered"`
	DifficultyLevel   string           `json:"difficulty_level"`
	DurationMinutes   int              `json:"session_duration"`
	Responses         []ResponseRecord `json:"responses"`
}

// QAPair is one question/answer pair submitted for structured feedback.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
