package planner

import (
	"testing"

	"powerboard-backend/internal/hubspot"
	"powerboard-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func project(id, name string, opts ...func(*hubspot.Project)) hubspot.Project {
	p := hubspot.Project{ID: id, Name: name, Stage: hubspot.StageRTB, DaysInstall: 2}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// A 3-day schedule starting Monday 2024-06-03 covers exactly the 3rd, 4th
// and 5th, each tagged scheduled.
func TestMaterialize_MultiDaySpan(t *testing.T) {
	projects := []hubspot.Project{project("deal-1", "Solar | Smith")}
	byProject := map[string]models.Schedule{
		"deal-1": {ProjectID: "deal-1", StartDate: "2024-06-03", Days: 3, Crew: strPtr("WESTY Alpha")},
	}

	events := MaterializeEvents(projects, byProject)
	require.Len(t, events, 3)
	assert.Equal(t, "2024-06-03", events[0].Date)
	assert.Equal(t, "2024-06-04", events[1].Date)
	assert.Equal(t, "2024-06-05", events[2].Date)
	for i, e := range events {
		assert.Equal(t, EventKindScheduled, e.Kind)
		assert.Equal(t, i, e.DayIndex)
		assert.Equal(t, 3, e.Span)
		assert.Equal(t, "WESTY Alpha", e.Crew)
	}
}

// Without a local schedule, a CRM-set install date yields a single event
// tagged with the project's stage.
func TestMaterialize_FallbackToCRMDate(t *testing.T) {
	p := project("deal-2", "Solar | Jones", func(p *hubspot.Project) {
		p.Stage = hubspot.StageConstruction
		p.ScheduleDate = strPtr("2024-06-10")
		p.Crew = strPtr("DTC Alpha")
	})

	events := MaterializeEvents([]hubspot.Project{p}, nil)
	require.Len(t, events, 1)
	assert.Equal(t, "2024-06-10", events[0].Date)
	assert.Equal(t, hubspot.StageConstruction, events[0].Kind)
	assert.Equal(t, 1, events[0].Span)
	assert.Equal(t, "DTC Alpha", events[0].Crew)
}

// Projects with neither a schedule nor a CRM date stay off the calendar.
func TestMaterialize_UnscheduledOmitted(t *testing.T) {
	events := MaterializeEvents([]hubspot.Project{project("deal-3", "Solar | Doe")}, nil)
	assert.Empty(t, events)
}

// A local schedule wins over the CRM date.
func TestMaterialize_ScheduleBeatsCRMDate(t *testing.T) {
	p := project("deal-4", "Solar | Ray", func(p *hubspot.Project) {
		p.ScheduleDate = strPtr("2024-06-20")
	})
	byProject := map[string]models.Schedule{
		"deal-4": {ProjectID: "deal-4", StartDate: "2024-06-03", Days: 1},
	}

	events := MaterializeEvents([]hubspot.Project{p}, byProject)
	require.Len(t, events, 1)
	assert.Equal(t, "2024-06-03", events[0].Date)
	assert.Equal(t, EventKindScheduled, events[0].Kind)
}
