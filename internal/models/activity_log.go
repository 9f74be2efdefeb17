package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog records schedule mutations for the audit trail.
type ActivityLog struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Action    string         `gorm:"column:action;not null" json:"action"`
	ProjectID *string        `gorm:"column:project_id" json:"project_id"`
	UserEmail string         `gorm:"column:user_email" json:"user_email"`
	Details   datatypes.JSON `gorm:"column:details" json:"details"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_log"
}
