package schedules

import (
	"context"
	"errors"
	"fmt"

	"powerboard-backend/internal/models"

	"gorm.io/gorm"
)

// Service owns the schedule store. One row per project_id; all writes merge
// rather than replace, so a partial update never clobbers fields it omitted.
type Service struct {
	DB *gorm.DB
}

// UpsertInput is one schedule write. Pointer fields distinguish "omitted"
// (nil, keep the prior value) from "explicitly cleared" (pointer to empty
// string, which nulls crew/notes).
type UpsertInput struct {
	ProjectID string  `json:"project_id"`
	StartDate string  `json:"start_date"`
	Days      *int    `json:"days"`
	Crew      *string `json:"crew"`
	Notes     *string `json:"notes"`
	CreatedBy string  `json:"-"`
}

// Upsert creates or merges the schedule for input's project_id and returns
// the full merged record. Validation happens before any store mutation.
func (s *Service) Upsert(ctx context.Context, in UpsertInput) (*models.Schedule, error) {
	if in.ProjectID == "" || in.StartDate == "" {
		return nil, ErrProjectAndDateRequired
	}

	var rec models.Schedule
	err := s.DB.WithContext(ctx).Where("project_id = ?", in.ProjectID).First(&rec).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = models.Schedule{
			ProjectID: in.ProjectID,
			StartDate: in.StartDate,
			Days:      2,
		}
	case err != nil:
		return nil, fmt.Errorf("schedule store: %w", err)
	}

	rec.StartDate = in.StartDate
	if in.Days != nil && *in.Days >= 1 {
		rec.Days = *in.Days
	}
	if in.Crew != nil {
		rec.Crew = clearable(in.Crew)
	}
	if in.Notes != nil {
		rec.Notes = clearable(in.Notes)
	}
	if in.CreatedBy != "" {
		rec.CreatedBy = in.CreatedBy
	}

	if err := s.DB.WithContext(ctx).Save(&rec).Error; err != nil {
		return nil, fmt.Errorf("schedule store: %w", err)
	}
	return &rec, nil
}

// GetAll returns every schedule ordered by start_date ascending, id ascending
// for equal dates (deterministic regardless of insertion order).
func (s *Service) GetAll(ctx context.Context) ([]models.Schedule, error) {
	var recs []models.Schedule
	if err := s.DB.WithContext(ctx).Order("start_date asc, id asc").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("schedule store: %w", err)
	}
	return recs, nil
}

// GetByProjectID returns the schedule for one project.
func (s *Service) GetByProjectID(ctx context.Context, projectID string) (*models.Schedule, error) {
	var rec models.Schedule
	err := s.DB.WithContext(ctx).Where("project_id = ?", projectID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("schedule store: %w", err)
	}
	return &rec, nil
}

// GetMap returns all schedules keyed by project_id, for event materialization.
func (s *Service) GetMap(ctx context.Context) (map[string]models.Schedule, error) {
	recs, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byProject := make(map[string]models.Schedule, len(recs))
	for _, r := range recs {
		byProject[r.ProjectID] = r
	}
	return byProject, nil
}

// Delete removes the schedule for a project. Returns whether a row existed.
func (s *Service) Delete(ctx context.Context, projectID string) (bool, error) {
	res := s.DB.WithContext(ctx).Where("project_id = ?", projectID).Delete(&models.Schedule{})
	if res.Error != nil {
		return false, fmt.Errorf("schedule store: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// BulkUpsert applies each upsert in input order. A bad record does not fail
// the batch; the returned count is how many records were actually applied.
func (s *Service) BulkUpsert(ctx context.Context, inputs []UpsertInput) (int, error) {
	saved := 0
	for _, in := range inputs {
		if in.Notes == nil {
			notes := "Auto-scheduled"
			in.Notes = &notes
		}
		if _, err := s.Upsert(ctx, in); err != nil {
			continue
		}
		saved++
	}
	return saved, nil
}

func clearable(p *string) *string {
	if *p == "" {
		return nil
	}
	return p
}
