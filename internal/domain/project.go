package domain

import (
	"fmt"
	"strings"
	"time"
)

// Project is delivery work, usually converted from a won lead.
type Project struct {
	ID         int64         `json:"id"`
	LeadID     *int64        `json:"lead_id"`
	Name       string        `json:"name"`
	Status     ProjectStatus `json:"status"`
	BasePrice  int64         `json:"base_price"`
	HourlyRate int64         `json:"hourly_rate"`
	CreatedAt  time.Time     `json:"created_at"`
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if p.BasePrice < 0 {
		return fmt.Errorf("%w: base_price must not be negative", ErrInvalidInput)
	}
	if p.HourlyRate <= 0 {
		return fmt.Errorf("%w: hourly_rate must be positive", ErrInvalidInput)
	}
	return nil
}

// ProjectView is a project with its lead's client, when it has a lead.
type ProjectView struct {
	Project
	ClientName      *string `json:"client_name"`
	LeadProjectName *string `json:"lead_project_name"`
}

type ProjectPatch struct {
	LeadID     Optional[int64]         `json:"lead_id"`
	Name       Optional[string]        `json:"name"`
	Status     Optional[ProjectStatus] `json:"status"`
	BasePrice  Optional[int64]         `json:"base_price"`
	HourlyRate Optional[int64]         `json:"hourly_rate"`
}

func (p ProjectPatch) IsEmpty() bool {
	return !anySet(p.LeadID.Set, p.Name.Set, p.Status.Set, p.BasePrice.Set, p.HourlyRate.Set)
}

func (p ProjectPatch) Validate() error {
	for _, err := range []error{
		required("name", p.Name),
		required("status", p.Status),
		required("base_price", p.BasePrice),
		required("hourly_rate", p.HourlyRate),
	} {
		if err != nil {
			return err
		}
	}
	if p.Name.Set && strings.TrimSpace(p.Name.Value) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if p.HourlyRate.Set && p.HourlyRate.Value <= 0 {
		return fmt.Errorf("%w: hourly_rate must be positive", ErrInvalidInput)
	}
	if p.BasePrice.Set && p.BasePrice.Value < 0 {
		return fmt.Errorf("%w: base_price must not be negative", ErrInvalidInput)
	}
	return nil
}

// ProjectTask is a unit of delivery work inside a project.
// CompletedAt records the first time the task reached done.
type ProjectTask struct {
	ID          int64      `json:"id"`
	ProjectID   int64      `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (t *ProjectTask) Validate() error {
	if t.ProjectID <= 0 {
		return fmt.Errorf("%w: project_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return nil
}

type ProjectTaskPatch struct {
	Title       Optional[string]     `json:"title"`
	Description Optional[string]     `json:"description"`
	Status      Optional[TaskStatus] `json:"status"`
}

func (p ProjectTaskPatch) IsEmpty() bool {
	return !anySet(p.Title.Set, p.Description.Set, p.Status.Set)
}

func (p ProjectTaskPatch) Validate() error {
	for _, err := range []error{
		required("title", p.Title),
		required("description", p.Description),
		required("status", p.Status),
	} {
		if err != nil {
			return err
		}
	}
	if p.Title.Set && strings.TrimSpace(p.Title.Value) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return nil
}

// MarksDone reports whether the patch moves the task to done.
func (p ProjectTaskPatch) MarksDone() bool {
	return p.Status.Set && !p.Status.Null && p.Status.Value == TaskDone
}

// ProjectSummary rolls up a project's tasks and logged time.
type ProjectSummary struct {
	ProjectID      int64              `json:"project_id"`
	TaskCounts     map[TaskStatus]int `json:"task_counts"`
	TotalTasks     int                `json:"total_tasks"`
	LoggedMinutes  int                `json:"logged_minutes"`
	HourlyRate     int64              `json:"hourly_rate"`
	BillableAmount int64              `json:"billable_amount"`
}
