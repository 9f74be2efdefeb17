package hubspot

// Canonical pipeline stages. Deals in any other stage pass through with their
// raw stage id so the UI can still label them.
const (
	StageRTB          = "rtb"
	StageBlocked      = "blocked"
	StageConstruction = "construction"
	StageInspection   = "inspection"
)

// stageIDs maps canonical stage names to HubSpot pipeline stage IDs.
var stageIDs = map[string]string{
	StageRTB:          "22580871",
	StageBlocked:      "71052436",
	StageConstruction: "20440342",
	StageInspection:   "22580872",
}

// stageByID is the reverse of stageIDs.
var stageByID = func() map[string]string {
	m := make(map[string]string, len(stageIDs))
	for name, id := range stageIDs {
		m[id] = name
	}
	return m
}()

// stageLabels are the friendly display names per stage ID.
var stageLabels = map[string]string{
	"22580871": "Ready to Build",
	"71052436": "RTB - Blocked",
	"20440342": "Construction",
	"22580872": "Inspection",
}

// schedulableStageIDs lists every stage the scheduler pulls from HubSpot.
func schedulableStageIDs() []string {
	ids := make([]string, 0, len(stageIDs))
	for _, id := range stageIDs {
		ids = append(ids, id)
	}
	return ids
}

// Project is one CRM deal projected into the scheduler's shape. Read-only
// within a scheduling session.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Amount       float64  `json:"amount"`
	Stage        string   `json:"stage"`
	StageLabel   string   `json:"stageLabel"`
	Address      string   `json:"address"`
	Location     string   `json:"location"`
	SystemSize   *float64 `json:"systemSize"`
	Batteries    int      `json:"batteries"`
	BatteryModel *string  `json:"batteryModel"`
	Crew         *string  `json:"crew"`
	DaysInstall  int      `json:"daysInstall"`
	DaysElec     int      `json:"daysElec"`
	RoofType     *string  `json:"roofType"`
	ScheduleDate *string  `json:"scheduleDate"`
	Type         string   `json:"type"`
	HubspotURL   string   `json:"hubspotUrl"`
}

// PreferredCrew returns the deal's preferred crew name, or "".
func (p Project) PreferredCrew() string {
	if p.Crew == nil {
		return ""
	}
	return *p.Crew
}

// HasScheduleDate reports whether the CRM carries an externally-set install date.
func (p Project) HasScheduleDate() bool {
	return p.ScheduleDate != nil && *p.ScheduleDate != ""
}
