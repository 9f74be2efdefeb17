package schedules

import "errors"

var (
	ErrProjectAndDateRequired = errors.New("project_id and start_date are required")
	ErrScheduleNotFound       = errors.New("Schedule not found")
)
