package models

import (
	"time"

	"gorm.io/gorm"
)

// SessionArchive stores a snapshot of a completed session for later review.
// Only the summary is persisted; live session state stays in memory.
type SessionArchive struct {
	gorm.Model
	SessionID         string    `gorm:"uniqueIndex;not null" json:"session_id"`
	Name              string    `json:"name"`
	CareerField       string    `gorm:"index" json:"career_field"`
	TargetRole        string    `json:"target_role"`
	InterviewType     string    `json:"interview_type"`
	TotalQuestions    int       `gorm:"not null" json:"total_questions"`
	AverageScore      float64   `gorm:"not null" json:"average_score"`
	CategoriesCovered string    `json:"categories_covered"` // comma-separated
	DifficultyLevel   string    `gorm:"not null" json:"difficulty_level"`
	DurationMinutes   int       `gorm:"not null" json:"duration_minutes"`
	EndedAt           time.Time `gorm:"not null;index" json:"ended_at"`
}
