package repository

import (
	"context"

	"github.com/alexanderramin/bidbook/internal/domain"
)

// Update and Delete methods report the number of rows changed. An id that
// matches nothing is not an error: it changes 0 rows.

type LeadRepo interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	List(ctx context.Context) ([]*domain.Lead, error)
	Update(ctx context.Context, id int64, p domain.LeadPatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type FeatureRepo interface {
	Create(ctx context.Context, f *domain.Feature) error
	GetByID(ctx context.Context, id int64) (*domain.Feature, error)
	// ListByLead returns every feature of the lead, in and out of scope,
	// normalized from whichever columns the row populates.
	ListByLead(ctx context.Context, leadID int64) ([]domain.Feature, error)
	Update(ctx context.Context, id int64, p domain.FeaturePatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteByLead(ctx context.Context, leadID int64) (int64, error)
}

type QuoteRepo interface {
	Create(ctx context.Context, q *domain.Quote) error
	GetByID(ctx context.Context, id int64) (*domain.Quote, error)
	ListByLead(ctx context.Context, leadID int64) ([]*domain.Quote, error)
	Update(ctx context.Context, id int64, p domain.QuotePatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type QuoteItemRepo interface {
	Create(ctx context.Context, i *domain.QuoteItem) error
	ListByQuote(ctx context.Context, quoteID int64) ([]*domain.QuoteItemView, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.ProjectView, error)
	List(ctx context.Context) ([]*domain.ProjectView, error)
	Update(ctx context.Context, id int64, p domain.ProjectPatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ProjectTaskRepo interface {
	Create(ctx context.Context, t *domain.ProjectTask) error
	GetByID(ctx context.Context, id int64) (*domain.ProjectTask, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.ProjectTask, error)
	// Update stamps completed_at in the same statement when the patch moves
	// the task to done.
	Update(ctx context.Context, id int64, p domain.ProjectTaskPatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type TimesheetRepo interface {
	Create(ctx context.Context, t *domain.Timesheet) error
	GetByID(ctx context.Context, id int64) (*domain.TimesheetView, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.TimesheetView, error)
	Update(ctx context.Context, id int64, p domain.TimesheetPatch) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	TotalMinutes(ctx context.Context, projectID int64) (int, error)
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	List(ctx context.Context) ([]*domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
}
