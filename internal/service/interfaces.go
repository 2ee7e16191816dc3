package service

import (
	"context"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/estimate"
)

// Update and Delete methods report the number of rows changed. An empty
// patch or an id that matches nothing reports 0 without error.

type LeadService interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	List(ctx context.Context) ([]*domain.Lead, error)
	Update(ctx context.Context, id int64, p domain.LeadPatch) (int64, error)
	// Delete removes the lead's features and then the lead, atomically.
	Delete(ctx context.Context, id int64) (int64, error)
	Convert(ctx context.Context, req ConvertRequest) (*domain.Project, error)
	// Import stores a lead together with its features in one transaction.
	Import(ctx context.Context, l *domain.Lead, features []domain.Feature) error
}

type FeatureService interface {
	Create(ctx context.Context, f *domain.Feature) error
	ListByLead(ctx context.Context, leadID int64) ([]domain.Feature, error)
	Update(ctx context.Context, id int64, p domain.FeaturePatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type QuoteService interface {
	Create(ctx context.Context, q *domain.Quote) error
	GetByID(ctx context.Context, id int64) (*domain.Quote, error)
	ListByLead(ctx context.Context, leadID int64) ([]*domain.Quote, error)
	Update(ctx context.Context, id int64, p domain.QuotePatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)

	AddItem(ctx context.Context, i *domain.QuoteItem) error
	ListItems(ctx context.Context, quoteID int64) ([]*domain.QuoteItemView, error)
	DeleteItem(ctx context.Context, id int64) (int64, error)

	// Calculate prices the lead's current features without writing anything.
	Calculate(ctx context.Context, leadID int64, p estimate.Params) (*estimate.Breakdown, error)
	// Generate calculates and stores the result as a draft quote with one
	// item per line.
	Generate(ctx context.Context, req GenerateRequest) (*GeneratedQuote, error)
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.ProjectView, error)
	List(ctx context.Context) ([]*domain.ProjectView, error)
	Update(ctx context.Context, id int64, p domain.ProjectPatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Summary(ctx context.Context, id int64) (*domain.ProjectSummary, error)
}

type ProjectTaskService interface {
	Create(ctx context.Context, t *domain.ProjectTask) error
	GetByID(ctx context.Context, id int64) (*domain.ProjectTask, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.ProjectTask, error)
	Update(ctx context.Context, id int64, p domain.ProjectTaskPatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type TimesheetService interface {
	Create(ctx context.Context, t *domain.Timesheet) error
	ListByProject(ctx context.Context, projectID int64) ([]*domain.TimesheetView, error)
	Update(ctx context.Context, id int64, p domain.TimesheetPatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type UserService interface {
	Create(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
}

// TodoService manages the free-standing task list.
type TodoService interface {
	Create(ctx context.Context, t *domain.Task) error
	List(ctx context.Context) ([]*domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
}

type SchemaService interface {
	CreateTables(ctx context.Context) error
}

// ConvertRequest turns a lead into a project. Zero values fall back to the
// lead's accepted quote, then to the defaults.
type ConvertRequest struct {
	LeadID     int64
	Name       string
	BasePrice  int64
	HourlyRate int64
}

// GenerateRequest describes a quote to calculate and store. An empty title
// becomes "Quote-YYYY-MM-DD".
type GenerateRequest struct {
	LeadID int64
	Title  string
	Notes  string
	estimate.Params
}

// GeneratedQuote is a stored quote's id together with its breakdown.
type GeneratedQuote struct {
	QuoteID int64 `json:"quote_id"`
	estimate.Breakdown
}
