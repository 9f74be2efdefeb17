package planner

import "sort"

// Conflict flags two or more projects occupying the same crew on the same day.
type Conflict struct {
	Crew     string   `json:"crew"`
	Date     string   `json:"date"`
	Projects []string `json:"projects"`
}

// DetectConflicts groups events by crew and date and reports every crew/date
// pair claimed by more than one distinct project. Events without a crew never
// conflict, and re-materialized events for the same project on the same day
// count once. Output is ordered by crew in first-encounter order, then date
// ascending (ISO dates sort lexicographically).
func DetectConflicts(events []Event) []Conflict {
	type occupant struct {
		projectID string
		name      string
	}

	crewOrder := []string{}
	byCrew := map[string]map[string][]occupant{}

	for _, e := range events {
		if e.Crew == "" {
			continue
		}
		dates, ok := byCrew[e.Crew]
		if !ok {
			dates = map[string][]occupant{}
			byCrew[e.Crew] = dates
			crewOrder = append(crewOrder, e.Crew)
		}
		seen := false
		for _, o := range dates[e.Date] {
			if o.projectID == e.Project.ID {
				seen = true
				break
			}
		}
		if !seen {
			dates[e.Date] = append(dates[e.Date], occupant{projectID: e.Project.ID, name: displayName(e.Project.Name)})
		}
	}

	var conflicts []Conflict
	for _, crew := range crewOrder {
		dates := byCrew[crew]
		keys := make([]string, 0, len(dates))
		for d := range dates {
			keys = append(keys, d)
		}
		sort.Strings(keys)
		for _, d := range keys {
			occupants := dates[d]
			if len(occupants) < 2 {
				continue
			}
			names := make([]string, len(occupants))
			for i, o := range occupants {
				names[i] = o.name
			}
			conflicts = append(conflicts, Conflict{Crew: crew, Date: d, Projects: names})
		}
	}
	return conflicts
}
