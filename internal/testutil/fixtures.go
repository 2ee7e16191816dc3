package testutil

import (
	"time"

	"github.com/alexanderramin/bidbook/internal/domain"
)

// Lead options
type LeadOption func(*domain.Lead)

func WithProjectName(name string) LeadOption {
	return func(l *domain.Lead) {
		l.ProjectName = name
	}
}

func WithBudget(min, max int64) LeadOption {
	return func(l *domain.Lead) {
		l.BudgetMin = &min
		l.BudgetMax = &max
	}
}

func WithLeadStatus(s domain.LeadStatus) LeadOption {
	return func(l *domain.Lead) {
		l.Status = s
	}
}

func NewTestLead(client string, opts ...LeadOption) *domain.Lead {
	l := &domain.Lead{
		ClientName: client,
		Status:     domain.LeadNew,
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Feature options
type FeatureOption func(*domain.Feature)

func WithHours(h float64) FeatureOption {
	return func(f *domain.Feature) {
		f.HoursEst = h
	}
}

func WithComplexity(c domain.Complexity) FeatureOption {
	return func(f *domain.Feature) {
		f.Complexity = c
	}
}

func OutOfScope() FeatureOption {
	return func(f *domain.Feature) {
		f.InScope = false
	}
}

func NewTestFeature(leadID int64, name string, opts ...FeatureOption) *domain.Feature {
	f := &domain.Feature{
		LeadID:     leadID,
		Name:       name,
		HoursEst:   1,
		Complexity: domain.ComplexityMedium,
		InScope:    true,
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func NewTestQuote(leadID int64, title string) *domain.Quote {
	now := time.Now().UTC()
	return &domain.Quote{
		LeadID:     leadID,
		Title:      title,
		HourlyRate: domain.DefaultHourlyRate,
		Status:     domain.QuoteDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func NewTestQuoteItem(quoteID int64, name string, featureID *int64) *domain.QuoteItem {
	return &domain.QuoteItem{
		QuoteID:     quoteID,
		FeatureID:   featureID,
		ItemName:    name,
		Hours:       2,
		RatePerHour: domain.DefaultHourlyRate,
		TotalPrice:  1500,
		Complexity:  domain.ComplexityMedium,
		CreatedAt:   time.Now().UTC(),
	}
}

// Project options
type ProjectOption func(*domain.Project)

func WithLead(leadID int64) ProjectOption {
	return func(p *domain.Project) {
		p.LeadID = &leadID
	}
}

func WithHourlyRate(rate int64) ProjectOption {
	return func(p *domain.Project) {
		p.HourlyRate = rate
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		Name:       name,
		Status:     domain.ProjectActive,
		HourlyRate: domain.DefaultHourlyRate,
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestProjectTask(projectID int64, title string) *domain.ProjectTask {
	return &domain.ProjectTask{
		ProjectID: projectID,
		Title:     title,
		Status:    domain.TaskTodo,
		CreatedAt: time.Now().UTC(),
	}
}

// Timesheet options
type TimesheetOption func(*domain.Timesheet)

func WithTask(taskID int64) TimesheetOption {
	return func(t *domain.Timesheet) {
		t.TaskID = &taskID
	}
}

func WithStartTime(ts time.Time) TimesheetOption {
	return func(t *domain.Timesheet) {
		t.StartTime = ts
	}
}

func NewTestTimesheet(projectID int64, minutes int, opts ...TimesheetOption) *domain.Timesheet {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Timesheet{
		ProjectID:       projectID,
		Description:     "work",
		StartTime:       now.Add(-time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
		CreatedAt:       now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
