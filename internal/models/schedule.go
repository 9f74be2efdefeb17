package models

import "time"

// Schedule is the locally owned assignment of a start date, duration and crew
// to a CRM project. At most one row exists per project_id; writes go through
// the merge-upsert in internal/schedules.
type Schedule struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProjectID string    `gorm:"column:project_id;uniqueIndex;not null" json:"project_id"`
	StartDate string    `gorm:"column:start_date;not null" json:"start_date"` // YYYY-MM-DD
	Days      int       `gorm:"column:days;not null;default:2" json:"days"`
	Crew      *string   `gorm:"column:crew" json:"crew"`
	Notes     *string   `gorm:"column:notes" json:"notes"`
	CreatedBy string    `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Schedule) TableName() string {
	return "schedules"
}
