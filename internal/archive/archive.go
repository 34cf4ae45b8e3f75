package archive

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"interviewcoach/api/internal/models"
)

// Manager persists summaries of completed sessions. Live sessions stay in
// memory; only the final summary ever reaches the database.
type Manager struct {
	db *gorm.DB
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

// Store writes one archive row for an ended session. Ending the same
// session twice keeps the first archived summary.
func (m *Manager) Store(sessionID string, profile models.UserProfile, summary models.Summary) error {
	record := &models.SessionArchive{
		SessionID:         sessionID,
		Name:              profile.Name,
		CareerField:       profile.CareerField,
		TargetRole:        profile.TargetRole,
		InterviewType:     profile.InterviewType,
		TotalQuestions:    summary.TotalQuestions,
		AverageScore:      summary.AverageScore,
		CategoriesCovered: strings.Join(summary.CategoriesCovered, ","),
		DifficultyLevel:   summary.DifficultyLevel,
		DurationMinutes:   summary.DurationMinutes,
		EndedAt:           time.Now(),
	}

	result := m.db.Where(models.SessionArchive{SessionID: sessionID}).FirstOrCreate(record)
	if result.Error != nil {
		return fmt.Errorf("failed to archive session: %w", result.Error)
	}
	return nil
}

// Recent returns the most recently ended sessions.
func (m *Manager) Recent(limit int) ([]models.SessionArchive, error) {
	if limit <= 0 {
		limit = 10
	}

	var records []models.SessionArchive
	if err := m.db.Order("ended_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query recent archives: %w", err)
	}
	return records, nil
}

// Stats returns aggregate numbers over all archived sessions.
func (m *Manager) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var totalCount int64
	if err := m.db.Model(&models.SessionArchive{}).Count(&totalCount).Error; err != nil {
		return nil, err
	}
	stats["total_count"] = totalCount

	var avgScore float64
	if totalCount > 0 {
		row := m.db.Model(&models.SessionArchive{}).Select("AVG(average_score)").Row()
		if err := row.Scan(&avgScore); err != nil {
			return nil, err
		}
	}
	stats["average_score"] = avgScore

	var totalQuestions int64
	if totalCount > 0 {
		row := m.db.Model(&models.SessionArchive{}).Select("COALESCE(SUM(total_questions), 0)").Row()
		if err := row.Scan(&totalQuestions); err != nil {
			return nil, err
		}
	}
	stats["total_questions"] = totalQuestions

	return stats, nil
}
