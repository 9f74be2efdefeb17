package planner

import (
	"sort"
	"time"

	"powerboard-backend/internal/hubspot"
	"powerboard-backend/internal/models"
	"powerboard-backend/internal/schedules"
)

// Optimize batch-assigns start dates to unscheduled ready-to-build projects,
// highest revenue first, one job at a time per crew on weekdays only.
//
// A project is eligible when its stage is rtb, it has no local schedule, and
// the CRM carries no install date. Only projects whose preferred crew matches
// a known active crew get assigned; the optimizer never picks a crew on its
// own. Known limitation, kept from day one: each crew's starting availability
// is "the first weekday after today" and does not inspect already-booked
// spans, so a run can land on top of a manually entered schedule.
func Optimize(projects []hubspot.Project, existing map[string]models.Schedule, crews []models.Crew, today time.Time) []schedules.UpsertInput {
	eligible := make([]hubspot.Project, 0, len(projects))
	for _, p := range projects {
		if p.Stage != hubspot.StageRTB {
			continue
		}
		if _, scheduled := existing[p.ID]; scheduled {
			continue
		}
		if p.HasScheduleDate() {
			continue
		}
		eligible = append(eligible, p)
	}

	// Highest revenue first; ties keep source order.
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Amount > eligible[j].Amount
	})

	start := NextWorkday(today.AddDate(0, 0, 1))
	crewNext := make(map[string]time.Time, len(crews))
	for _, c := range crews {
		if c.Active != 1 {
			continue
		}
		crewNext[c.Name] = start
	}

	var batch []schedules.UpsertInput
	for _, p := range eligible {
		crew := p.PreferredCrew()
		next, ok := crewNext[crew]
		if !ok {
			continue
		}
		days := p.DaysInstall
		if days < 1 {
			days = 2
		}
		d := days
		name := crew
		batch = append(batch, schedules.UpsertInput{
			ProjectID: p.ID,
			StartDate: next.Format(dateLayout),
			Days:      &d,
			Crew:      &name,
		})
		crewNext[crew] = NextWorkday(next.AddDate(0, 0, days))
	}
	return batch
}

// NextWorkday returns d advanced past any Saturday or Sunday.
func NextWorkday(d time.Time) time.Time {
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
