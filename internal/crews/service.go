package crews

import (
	"context"
	"errors"
	"fmt"

	"powerboard-backend/internal/models"

	"gorm.io/gorm"
)

var ErrCrewNotFound = errors.New("Crew not found")

// Service owns the crew directory.
type Service struct {
	DB *gorm.DB
}

// Active returns the active roster ordered by location then name.
func (s *Service) Active(ctx context.Context) ([]models.Crew, error) {
	var crews []models.Crew
	if err := s.DB.WithContext(ctx).Where("active = ?", 1).Order("location asc, name asc").Find(&crews).Error; err != nil {
		return nil, fmt.Errorf("crew directory: %w", err)
	}
	return crews, nil
}

// GroupedByLocation returns active crews keyed by location, each group in
// name order.
func (s *Service) GroupedByLocation(ctx context.Context) (map[string][]models.Crew, error) {
	crews, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]models.Crew)
	for _, c := range crews {
		grouped[c.Location] = append(grouped[c.Location], c)
	}
	return grouped, nil
}

// UpdateInput carries partial crew updates; nil fields keep prior values.
type UpdateInput struct {
	Name         *string `json:"name"`
	Location     *string `json:"location"`
	Roofers      *int    `json:"roofers"`
	Electricians *int    `json:"electricians"`
	Color        *string `json:"color"`
	Active       *int    `json:"active"`
}

// Update merges the supplied fields over the crew with the given id.
func (s *Service) Update(ctx context.Context, id uint, in UpdateInput) (*models.Crew, error) {
	var crew models.Crew
	err := s.DB.WithContext(ctx).First(&crew, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCrewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("crew directory: %w", err)
	}

	if in.Name != nil {
		crew.Name = *in.Name
	}
	if in.Location != nil {
		crew.Location = *in.Location
	}
	if in.Roofers != nil {
		crew.Roofers = *in.Roofers
	}
	if in.Electricians != nil {
		crew.Electricians = *in.Electricians
	}
	if in.Color != nil {
		crew.Color = *in.Color
	}
	if in.Active != nil {
		crew.Active = *in.Active
	}

	if err := s.DB.WithContext(ctx).Save(&crew).Error; err != nil {
		return nil, fmt.Errorf("crew directory: %w", err)
	}
	return &crew, nil
}
