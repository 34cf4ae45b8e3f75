package session

import (
	"sort"
	"time"

	"interviewcoach/api/internal/models"
)

// Session is the central aggregate for one user's interview practice run.
// Owned exclusively by the Store; callers only ever see View copies.
type Session struct {
	ID                string
	Profile           models.UserProfile
	CreatedAt         time.Time
	LastActivity      time.Time
	QuestionsAsked    int
	CurrentQuestion   string
	Responses         []models.ResponseRecord
	Scores            []int
	CategoriesCovered map[string]struct{}
	DifficultyLevel   string
	Complete          bool
}

// View is a read-only copy of a session handed to callers.
type View struct {
	ID                string                  `json:"session_id"`
	Profile           models.UserProfile      `json:"profile"`
	CreatedAt         time.Time               `json:"created_at"`
	LastActivity      time.Time               `json:"last_activity"`
	QuestionsAsked    int                     `json:"questions_asked"`
	CurrentQuestion   string                  `json:"current_question"`
	Responses         []models.ResponseRecord `json:"responses"`
	Scores            []int                   `json:"scores"`
	CategoriesCovered []string                `json:"categories_covered"`
	DifficultyLevel   string                  `json:"difficulty_level"`
	Complete          bool                    `json:"session_complete"`
}

func (s *Session) view() View {
	responses := make([]models.ResponseRecord, len(s.Responses))
	copy(responses, s.Responses)
	scores := make([]int, len(s.Scores))
	copy(scores, s.Scores)

	return View{
		ID:                s.ID,
		Profile:           s.Profile,
		CreatedAt:         s.CreatedAt,
		LastActivity:      s.LastActivity,
		QuestionsAsked:    s.QuestionsAsked,
		CurrentQuestion:   s.CurrentQuestion,
		Responses:         responses,
		Scores:            scores,
		CategoriesCovered: s.categoriesList(),
		DifficultyLevel:   s.DifficultyLevel,
		Complete:          s.Complete,
	}
}

// sorted for deterministic output; set membership is what matters
func (s *Session) categoriesList() []string {
	categories := make([]string, 0, len(s.CategoriesCovered))
	for category := range s.CategoriesCovered {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
