package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"powerboard-backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service appends to and reads the schedule audit trail.
type Service struct {
	DB *gorm.DB
}

// Log records one schedule mutation. Best-effort: a failed audit write is
// logged but never fails the request that triggered it.
func (s *Service) Log(ctx context.Context, action string, projectID *string, userEmail string, details interface{}) {
	var payload datatypes.JSON
	if details != nil {
		b, err := json.Marshal(details)
		if err == nil {
			payload = datatypes.JSON(b)
		}
	}
	entry := models.ActivityLog{
		Action:    action,
		ProjectID: projectID,
		UserEmail: userEmail,
		Details:   payload,
	}
	if err := s.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Error().Err(err).Str("action", action).Msg("activity log write failed")
	}
}

// Recent returns the newest entries, most recent first.
func (s *Service) Recent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []models.ActivityLog
	if err := s.DB.WithContext(ctx).Order("created_at desc, id desc").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("activity log: %w", err)
	}
	return entries, nil
}
