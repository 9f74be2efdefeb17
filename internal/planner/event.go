package planner

import (
	"strings"
	"time"

	"powerboard-backend/internal/hubspot"
	"powerboard-backend/internal/models"
)

const dateLayout = "2006-01-02"

// EventKindScheduled marks events backed by a local schedule; events derived
// from a CRM-set date carry the project's pipeline stage as kind instead.
const EventKindScheduled = "scheduled"

// Event is one day of calendar occupancy for one project. Events are derived
// on every read from projects plus the schedule store and never persisted.
type Event struct {
	Project  hubspot.Project `json:"project"`
	Date     string          `json:"date"` // YYYY-MM-DD
	DayIndex int             `json:"dayIndex"`
	Span     int             `json:"span"`
	Crew     string          `json:"crew"`
	Kind     string          `json:"kind"`
}

// MaterializeEvents projects the full project set and schedule map into flat
// per-day calendar events. A project with a local schedule spans `days`
// consecutive calendar days from its start date; a project with only a
// CRM-set install date yields a single event tagged with its stage; projects
// with neither stay off the calendar. Pure function of its inputs.
func MaterializeEvents(projects []hubspot.Project, byProject map[string]models.Schedule) []Event {
	var events []Event
	for _, p := range projects {
		if sched, ok := byProject[p.ID]; ok {
			start, err := time.Parse(dateLayout, sched.StartDate)
			if err != nil {
				continue
			}
			days := sched.Days
			if days < 1 {
				days = 1
			}
			crew := ""
			if sched.Crew != nil {
				crew = *sched.Crew
			}
			for i := 0; i < days; i++ {
				events = append(events, Event{
					Project:  p,
					Date:     start.AddDate(0, 0, i).Format(dateLayout),
					DayIndex: i,
					Span:     days,
					Crew:     crew,
					Kind:     EventKindScheduled,
				})
			}
			continue
		}
		if p.HasScheduleDate() {
			events = append(events, Event{
				Project:  p,
				Date:     *p.ScheduleDate,
				DayIndex: 0,
				Span:     1,
				Crew:     p.PreferredCrew(),
				Kind:     p.Stage,
			})
		}
	}
	return events
}

// displayName extracts the customer part of a "Type | Customer" deal name.
func displayName(name string) string {
	if _, after, ok := strings.Cut(name, " | "); ok && after != "" {
		return after
	}
	return name
}
