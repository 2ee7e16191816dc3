package domain

import (
	"fmt"
	"time"
)

// Timesheet is a block of time logged against a project and optionally one
// of its tasks.
type Timesheet struct {
	ID              int64      `json:"id"`
	ProjectID       int64      `json:"project_id"`
	TaskID          *int64     `json:"task_id"`
	Description     string     `json:"description"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (t *Timesheet) Validate() error {
	if t.ProjectID <= 0 {
		return fmt.Errorf("%w: project_id is required", ErrInvalidInput)
	}
	if t.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", ErrInvalidInput)
	}
	if t.EndTime != nil && t.EndTime.Before(t.StartTime) {
		return fmt.Errorf("%w: end_time is before start_time", ErrInvalidInput)
	}
	if t.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration_minutes must not be negative", ErrInvalidInput)
	}
	return nil
}

// FillDuration derives the duration from start and end when none was given.
func (t *Timesheet) FillDuration() {
	if t.DurationMinutes == 0 && t.EndTime != nil {
		t.DurationMinutes = int(t.EndTime.Sub(t.StartTime).Round(time.Minute) / time.Minute)
	}
}

// TimesheetView is a timesheet joined with its task title.
type TimesheetView struct {
	Timesheet
	TaskTitle *string `json:"task_title"`
}

type TimesheetPatch struct {
	TaskID          Optional[int64]     `json:"task_id"`
	Description     Optional[string]    `json:"description"`
	StartTime       Optional[time.Time] `json:"start_time"`
	EndTime         Optional[time.Time] `json:"end_time"`
	DurationMinutes Optional[int]       `json:"duration_minutes"`
}

func (p TimesheetPatch) IsEmpty() bool {
	return !anySet(p.TaskID.Set, p.Description.Set, p.StartTime.Set, p.EndTime.Set, p.DurationMinutes.Set)
}

func (p TimesheetPatch) Validate() error {
	for _, err := range []error{
		required("description", p.Description),
		required("start_time", p.StartTime),
		required("duration_minutes", p.DurationMinutes),
	} {
		if err != nil {
			return err
		}
	}
	if p.DurationMinutes.Set && p.DurationMinutes.Value < 0 {
		return fmt.Errorf("%w: duration_minutes must not be negative", ErrInvalidInput)
	}
	return nil
}

// Apply writes the supplied fields onto t.
func (p TimesheetPatch) Apply(t *Timesheet) {
	if p.TaskID.Set {
		t.TaskID = p.TaskID.Ptr()
	}
	if p.Description.Set {
		t.Description = p.Description.Value
	}
	if p.StartTime.Set {
		t.StartTime = p.StartTime.Value
	}
	if p.EndTime.Set {
		t.EndTime = p.EndTime.Ptr()
	}
	if p.DurationMinutes.Set {
		t.DurationMinutes = p.DurationMinutes.Value
	}
}
