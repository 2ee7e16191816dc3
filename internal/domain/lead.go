package domain

import (
	"fmt"
	"strings"
	"time"
)

// Lead is a prospective client engagement, tracked until it is won or lost.
type Lead struct {
	ID          int64      `json:"id"`
	ClientName  string     `json:"client_name"`
	ProjectName string     `json:"project_name"`
	BudgetMin   *int64     `json:"budget_min"`
	BudgetMax   *int64     `json:"budget_max"`
	Deadline    string     `json:"deadline"`
	Notes       string     `json:"notes"`
	Status      LeadStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Validate checks the fields a stored lead must always satisfy.
func (l *Lead) Validate() error {
	if strings.TrimSpace(l.ClientName) == "" {
		return fmt.Errorf("%w: client_name is required", ErrInvalidInput)
	}
	if l.BudgetMin != nil && *l.BudgetMin < 0 {
		return fmt.Errorf("%w: budget_min must not be negative", ErrInvalidInput)
	}
	if l.BudgetMax != nil && *l.BudgetMax < 0 {
		return fmt.Errorf("%w: budget_max must not be negative", ErrInvalidInput)
	}
	if l.BudgetMin != nil && l.BudgetMax != nil && *l.BudgetMin > *l.BudgetMax {
		return fmt.Errorf("%w: budget_min %d exceeds budget_max %d", ErrInvalidInput, *l.BudgetMin, *l.BudgetMax)
	}
	return nil
}

// LeadPatch is a partial update of a lead.
type LeadPatch struct {
	ClientName  Optional[string]     `json:"client_name"`
	ProjectName Optional[string]     `json:"project_name"`
	BudgetMin   Optional[int64]      `json:"budget_min"`
	BudgetMax   Optional[int64]      `json:"budget_max"`
	Deadline    Optional[string]     `json:"deadline"`
	Notes       Optional[string]     `json:"notes"`
	Status      Optional[LeadStatus] `json:"status"`
}

func (p LeadPatch) IsEmpty() bool {
	return !anySet(p.ClientName.Set, p.ProjectName.Set, p.BudgetMin.Set, p.BudgetMax.Set,
		p.Deadline.Set, p.Notes.Set, p.Status.Set)
}

func (p LeadPatch) Validate() error {
	for _, err := range []error{
		required("client_name", p.ClientName),
		required("project_name", p.ProjectName),
		required("deadline", p.Deadline),
		required("notes", p.Notes),
		required("status", p.Status),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Apply writes the supplied fields onto l.
func (p LeadPatch) Apply(l *Lead) {
	if p.ClientName.Set {
		l.ClientName = p.ClientName.Value
	}
	if p.ProjectName.Set {
		l.ProjectName = p.ProjectName.Value
	}
	if p.BudgetMin.Set {
		l.BudgetMin = p.BudgetMin.Ptr()
	}
	if p.BudgetMax.Set {
		l.BudgetMax = p.BudgetMax.Ptr()
	}
	if p.Deadline.Set {
		l.Deadline = p.Deadline.Value
	}
	if p.Notes.Set {
		l.Notes = p.Notes.Value
	}
	if p.Status.Set {
		l.Status = p.Status.Value
	}
}
