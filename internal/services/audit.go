package services

import (
	"time"

	"illyrian-api/internal/models"
)

type AuditService struct{}

func NewAuditService() *AuditService {
	return &AuditService{}
}

// Begin inserts the pre-phase audit record and assigns its identifier.
func (s *AuditService) Begin(record *models.AuditLog) error {
	record.InsertedDate = time.Now()
	return models.DB.Create(record).Error
}

// Finish updates the same logical record with the post-phase fields. It is a
// no-op when the pre-phase insert never succeeded.
func (s *AuditService) Finish(record *models.AuditLog) error {
	if record.ID == 0 {
		return models.DB.Create(record).Error
	}
	return models.DB.Save(record).Error
}

// RecentLogs returns the newest audit records, newest first.
func (s *AuditService) RecentLogs(limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var logs []models.AuditLog
	err := models.DB.Order("id desc").Limit(limit).Find(&logs).Error
	return logs, err
}
