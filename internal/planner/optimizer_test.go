package planner

import (
	"testing"
	"time"

	"powerboard-backend/internal/hubspot"
	"powerboard-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCrews = []models.Crew{
	{ID: 1, Name: "Alpha", Location: "Westminster", Active: 1},
	{ID: 2, Name: "Bravo", Location: "Westminster", Active: 1},
	{ID: 3, Name: "Idle", Location: "Centennial", Active: 0},
}

func rtbProject(id string, amount float64, crew string, days int) hubspot.Project {
	p := hubspot.Project{ID: id, Name: "Solar | " + id, Stage: hubspot.StageRTB, Amount: amount, DaysInstall: days}
	if crew != "" {
		p.Crew = &crew
	}
	return p
}

func mustDate(t *testing.T, s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// The higher-revenue project gets the earlier slot and the two assignments
// for the same crew never overlap; neither start falls on a weekend.
func TestOptimize_RevenuePriorityNoOverlap(t *testing.T) {
	projects := []hubspot.Project{
		rtbProject("small", 30000, "Alpha", 2),
		rtbProject("big", 50000, "Alpha", 2),
	}

	// Thursday: tomorrow is Friday, then the next workday after a 2-day
	// span crosses the weekend.
	batch := Optimize(projects, nil, testCrews, mustDate(t, "2024-06-06"))
	require.Len(t, batch, 2)

	assert.Equal(t, "big", batch[0].ProjectID)
	assert.Equal(t, "2024-06-07", batch[0].StartDate) // Friday
	assert.Equal(t, "small", batch[1].ProjectID)
	assert.Equal(t, "2024-06-10", batch[1].StartDate) // Monday, weekend skipped

	for _, in := range batch {
		d := mustDate(t, in.StartDate)
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
		require.NotNil(t, in.Crew)
		assert.Equal(t, "Alpha", *in.Crew)
		require.NotNil(t, in.Days)
		assert.Equal(t, 2, *in.Days)
	}
}

// Projects already scheduled locally, carrying a CRM date, or outside rtb are
// excluded.
func TestOptimize_EligibilityFilter(t *testing.T) {
	scheduled := rtbProject("scheduled", 90000, "Alpha", 2)
	crmDated := rtbProject("crm-dated", 80000, "Alpha", 2)
	date := "2024-06-20"
	crmDated.ScheduleDate = &date
	blocked := rtbProject("blocked", 70000, "Alpha", 2)
	blocked.Stage = hubspot.StageBlocked
	eligible := rtbProject("eligible", 10000, "Alpha", 2)

	existing := map[string]models.Schedule{
		"scheduled": {ProjectID: "scheduled", StartDate: "2024-06-10", Days: 2},
	}

	batch := Optimize([]hubspot.Project{scheduled, crmDated, blocked, eligible}, existing, testCrews, mustDate(t, "2024-06-03"))
	require.Len(t, batch, 1)
	assert.Equal(t, "eligible", batch[0].ProjectID)
}

// No preferred crew, an unknown crew, or an inactive crew all mean the
// project is skipped — the optimizer never picks a crew itself.
func TestOptimize_PreferredCrewOnly(t *testing.T) {
	projects := []hubspot.Project{
		rtbProject("no-pref", 90000, "", 2),
		rtbProject("unknown", 80000, "Ghost Crew", 2),
		rtbProject("inactive", 70000, "Idle", 2),
		rtbProject("ok", 10000, "Bravo", 2),
	}

	batch := Optimize(projects, nil, testCrews, mustDate(t, "2024-06-03"))
	require.Len(t, batch, 1)
	assert.Equal(t, "ok", batch[0].ProjectID)
}

// Different crews fill independently from the same starting date.
func TestOptimize_PerCrewCursors(t *testing.T) {
	projects := []hubspot.Project{
		rtbProject("a", 50000, "Alpha", 3),
		rtbProject("b", 40000, "Bravo", 2),
		rtbProject("c", 30000, "Alpha", 2),
	}

	// Monday: everyone starts Tuesday.
	batch := Optimize(projects, nil, testCrews, mustDate(t, "2024-06-03"))
	require.Len(t, batch, 3)
	assert.Equal(t, "2024-06-04", batch[0].StartDate) // a on Alpha
	assert.Equal(t, "2024-06-04", batch[1].StartDate) // b on Bravo
	assert.Equal(t, "2024-06-07", batch[2].StartDate) // c on Alpha after a's 3 days
}

// Equal amounts keep source order (stable sort).
func TestOptimize_StableTies(t *testing.T) {
	projects := []hubspot.Project{
		rtbProject("first", 50000, "Alpha", 2),
		rtbProject("second", 50000, "Alpha", 2),
	}

	batch := Optimize(projects, nil, testCrews, mustDate(t, "2024-06-03"))
	require.Len(t, batch, 2)
	assert.Equal(t, "first", batch[0].ProjectID)
	assert.Equal(t, "second", batch[1].ProjectID)
}

// Within one run, assignments for the same crew never produce a conflict.
func TestOptimize_BatchIsConflictFree(t *testing.T) {
	projects := []hubspot.Project{
		rtbProject("a", 50000, "Alpha", 3),
		rtbProject("b", 40000, "Alpha", 2),
		rtbProject("c", 30000, "Alpha", 4),
	}

	batch := Optimize(projects, nil, testCrews, mustDate(t, "2024-06-03"))
	require.Len(t, batch, 3)

	byProject := map[string]models.Schedule{}
	byID := map[string]hubspot.Project{}
	for _, p := range projects {
		byID[p.ID] = p
	}
	for _, in := range batch {
		byProject[in.ProjectID] = models.Schedule{
			ProjectID: in.ProjectID,
			StartDate: in.StartDate,
			Days:      *in.Days,
			Crew:      in.Crew,
		}
	}
	ordered := []hubspot.Project{byID["a"], byID["b"], byID["c"]}
	events := MaterializeEvents(ordered, byProject)
	assert.Empty(t, DetectConflicts(events))
}
