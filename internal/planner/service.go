package planner

import (
	"context"
	"time"

	"powerboard-backend/internal/activity"
	"powerboard-backend/internal/crews"
	"powerboard-backend/internal/hubspot"
	"powerboard-backend/internal/schedules"
)

// Service wires the pure planning functions to their data sources: the CRM
// project source, the schedule store and the crew directory.
type Service struct {
	Projects  hubspot.Client
	Schedules *schedules.Service
	Crews     *crews.Service
	Activity  *activity.Service
	Now       func() time.Time // defaults to time.Now
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Events fetches projects and schedules and materializes the calendar.
func (s *Service) Events(ctx context.Context, location string) ([]Event, error) {
	projects, _, err := s.Projects.SearchProjects(ctx, location)
	if err != nil {
		return nil, err
	}
	byProject, err := s.Schedules.GetMap(ctx)
	if err != nil {
		return nil, err
	}
	return MaterializeEvents(projects, byProject), nil
}

// Conflicts materializes the calendar and reports crew double-bookings.
func (s *Service) Conflicts(ctx context.Context, location string) ([]Conflict, error) {
	events, err := s.Events(ctx, location)
	if err != nil {
		return nil, err
	}
	return DetectConflicts(events), nil
}

// AutoOptimizeResult is what one optimizer run produced.
type AutoOptimizeResult struct {
	Saved     int                     `json:"saved"`
	Schedules []schedules.UpsertInput `json:"schedules"`
}

// AutoOptimize runs the heuristic scheduler over every unscheduled
// ready-to-build project and persists the batch as one bulk upsert.
func (s *Service) AutoOptimize(ctx context.Context, userEmail string) (*AutoOptimizeResult, error) {
	projects, _, err := s.Projects.SearchProjects(ctx, "All")
	if err != nil {
		return nil, err
	}
	existing, err := s.Schedules.GetMap(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := s.Crews.Active(ctx)
	if err != nil {
		return nil, err
	}

	batch := Optimize(projects, existing, roster, s.now())
	for i := range batch {
		batch[i].CreatedBy = userEmail
	}

	saved, err := s.Schedules.BulkUpsert(ctx, batch)
	if err != nil {
		return nil, err
	}

	s.Activity.Log(ctx, "bulk_schedule", nil, userEmail, map[string]interface{}{
		"count":  saved,
		"action": "auto-optimize",
	})

	return &AutoOptimizeResult{Saved: saved, Schedules: batch}, nil
}
