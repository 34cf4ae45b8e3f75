package models

import (
	"encoding/json"
	"errors"
	"strings"
)

type CreateSessionRequest struct {
	Name            string `json:"name"`
	CareerField     string `json:"career_field"`
	ExperienceLevel string `json:"experience_level"`
	TargetRole      string `json:"target_role"`
	InterviewType   string `json:"interview_type"`
}

// implements the Validator interface
func (r *CreateSessionRequest) Validate() error {
	if r.InterviewType == "" {
		r.InterviewType = "behavioral"
	}

	if r.CareerField != "" && !CareerFields[strings.ToLower(r.CareerField)] {
		return &ErrorResponse{
			Code:    "unsupported_career_field",
			Message: "Career field not supported. See /api/v1/meta for the supported list",
		}
	}

	if r.InterviewType != "" && !InterviewCategories[strings.ToLower(r.InterviewType)] {
		return &ErrorResponse{
			Code:    "invalid_interview_type",
			Message: "Interview type must be one of the supported categories",
		}
	}

	return nil
}

func (r *CreateSessionRequest) Profile() UserProfile {
	return UserProfile{
		Name:            r.Name,
		CareerField:     r.CareerField,
		ExperienceLevel: r.ExperienceLevel,
		TargetRole:      r.TargetRole,
		InterviewType:   r.InterviewType,
	}
}

type GenerateQuestionRequest struct {
	SessionID string `json:"session_id"`
	Category  string `json:"category"`
}

func (r *GenerateQuestionRequest) Validate() error {
	if r.SessionID == "" {
		return &ErrorResponse{
			Code:    "missing_session_id",
			Message: "session_id field is required",
		}
	}

	if r.Category == "" {
		r.Category = "behavioral"
	}
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))

	if !InterviewCategories[r.Category] {
		return &ErrorResponse{
			Code:    "invalid_category",
			Message: "Category must be one of the supported interview categories",
		}
	}

	return nil
}

type EvaluateResponseRequest struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
	Category  string `json:"category"`
}

func (r *EvaluateResponseRequest) Validate() error {
	if r.SessionID == "" {
		return &ErrorResponse{
			Code:    "missing_session_id",
			Message: "session_id field is required",
		}
	}

	if strings.TrimSpace(r.Response) == "" {
		return &ErrorResponse{
			Code:    "missing_response",
			Message: "Response field is required",
		}
	}

	if r.Category == "" {
		r.Category = "behavioral"
	}
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))

	return nil
}

type RoleQuestionsRequest struct {
	Role         string `json:"role"`
	NumQuestions int    `json:"num_questions"`
}

func (r *RoleQuestionsRequest) Validate() error {
	if strings.TrimSpace(r.Role) == "" {
		return &ErrorResponse{
			Code:    "missing_role",
			Message: "Role field is required",
		}
	}

	if r.NumQuestions <= 0 {
		r.NumQuestions = 3
	}
	if r.NumQuestions > 10 {
		r.NumQuestions = 10
	}

	return nil
}

// QAEntry accepts either a keyed pair {"question": ..., "answer": ...}
// or a 2-element array ["question", "answer"].
type QAEntry struct {
	Question string
	Answer   string
}

func (e *QAEntry) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var pair []string
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return errors.New("ordered Q&A pair must have exactly 2 elements")
		}
		e.Question = pair[0]
		e.Answer = pair[1]
		return nil
	}

	var keyed struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := json.Unmarshal(data, &keyed); err != nil {
		return err
	}
	e.Question = keyed.Question
	e.Answer = keyed.Answer
	return nil
}

type QAFeedbackRequest struct {
	QuestionsAnswers []QAEntry `json:"questions_answers"`
	Role             string    `json:"role"`
}

func (r *QAFeedbackRequest) Validate() error {
	if len(r.QuestionsAnswers) == 0 {
		return &ErrorResponse{
			Code:    "missing_questions_answers",
			Message: "Questions and answers are required",
		}
	}

	if len(r.Pairs()) == 0 {
		return &ErrorResponse{
			Code:    "no_valid_pairs",
			Message: "No valid Q&A pairs found",
		}
	}

	if r.Role == "" {
		r.Role = "General"
	}

	return nil
}

// Pairs filters out entries missing either field.
func (r *QAFeedbackRequest) Pairs() []QAPair {
	pairs := make([]QAPair, 0, len(r.QuestionsAnswers))
	for _, entry := range r.QuestionsAnswers {
		if entry.Question == "" || entry.Answer == "" {
			continue
		}
		pairs = append(pairs, QAPair{Question: entry.Question, Answer: entry.Answer})
	}
	return pairs
}
