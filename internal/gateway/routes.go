package gateway

import (
	"context"
	"encoding/json"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/estimate"
	"github.com/alexanderramin/bidbook/internal/service"
)

func changed(n int64, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return changesResult{Changes: n}, nil
}

func result[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// with decodes the payload into P before calling fn.
func with[P any](fn func(ctx context.Context, p P) (any, error)) handler {
	return func(ctx context.Context, payload json.RawMessage) (any, error) {
		p, err := decode[P](payload)
		if err != nil {
			return nil, err
		}
		return fn(ctx, p)
	}
}

// insert decodes an entity, creates it and answers {id}.
func insert[E any](create func(context.Context, *E) error, id func(*E) int64) handler {
	return with(func(ctx context.Context, e E) (any, error) {
		if err := create(ctx, &e); err != nil {
			return nil, err
		}
		return idResult{ID: id(&e)}, nil
	})
}

func update[P any](fn func(context.Context, int64, P) (int64, error)) handler {
	return with(func(ctx context.Context, p updatePayload[P]) (any, error) {
		return changed(fn(ctx, p.ID, p.Fields))
	})
}

func remove(fn func(context.Context, int64) (int64, error)) handler {
	return with(func(ctx context.Context, p idPayload) (any, error) {
		return changed(fn(ctx, p.ID))
	})
}

func routes(s Services) map[string]handler {
	return map[string]handler{
		"create-tables": func(ctx context.Context, _ json.RawMessage) (any, error) {
			if err := s.Schema.CreateTables(ctx); err != nil {
				return nil, err
			}
			return map[string]bool{"created": true}, nil
		},

		"get-users": func(ctx context.Context, _ json.RawMessage) (any, error) {
			return result(s.Users.List(ctx))
		},
		"add-user": insert(s.Users.Create, func(u *domain.User) int64 { return u.ID }),
		"get-tasks": func(ctx context.Context, _ json.RawMessage) (any, error) {
			return result(s.Todos.List(ctx))
		},
		"add-task": insert(s.Todos.Create, func(t *domain.Task) int64 { return t.ID }),
		"update-task-status": with(func(ctx context.Context, p taskStatusPayload) (any, error) {
			return changed(s.Todos.UpdateStatus(ctx, p.ID, p.Status))
		}),

		"get-leads": func(ctx context.Context, _ json.RawMessage) (any, error) {
			return result(s.Leads.List(ctx))
		},
		"get-lead": with(func(ctx context.Context, p idPayload) (any, error) {
			return result(s.Leads.GetByID(ctx, p.ID))
		}),
		"add-lead":    insert(s.Leads.Create, func(l *domain.Lead) int64 { return l.ID }),
		"update-lead": update(s.Leads.Update),
		"delete-lead": remove(s.Leads.Delete),
		"convert-lead": with(func(ctx context.Context, p convertPayload) (any, error) {
			return result(s.Leads.Convert(ctx, service.ConvertRequest{
				LeadID:     p.ID,
				Name:       p.Name,
				BasePrice:  p.BasePrice,
				HourlyRate: p.HourlyRate,
			}))
		}),

		"get-features": with(func(ctx context.Context, p leadRef) (any, error) {
			return result(s.Features.ListByLead(ctx, p.LeadID))
		}),
		"add-feature": with(func(ctx context.Context, p featurePayload) (any, error) {
			f := p.feature()
			if err := s.Features.Create(ctx, f); err != nil {
				return nil, err
			}
			return idResult{ID: f.ID}, nil
		}),
		"update-feature": update(s.Features.Update),
		"delete-feature": remove(s.Features.Delete),

		"calculate-quote": with(func(ctx context.Context, p calculatePayload) (any, error) {
			return result(s.Quotes.Calculate(ctx, p.LeadID, estimate.Params{
				BasePrice:  p.BasePrice,
				HourlyRate: p.HourlyRate,
			}))
		}),
		"generate-quote": with(func(ctx context.Context, p generatePayload) (any, error) {
			return result(s.Quotes.Generate(ctx, service.GenerateRequest{
				LeadID: p.LeadID,
				Title:  p.Title,
				Notes:  p.Notes,
				Params: estimate.Params{BasePrice: p.BasePrice, HourlyRate: p.HourlyRate},
			}))
		}),
		"get-quotes": with(func(ctx context.Context, p leadRef) (any, error) {
			return result(s.Quotes.ListByLead(ctx, p.LeadID))
		}),
		"get-quote": with(func(ctx context.Context, p idPayload) (any, error) {
			return result(s.Quotes.GetByID(ctx, p.ID))
		}),
		"add-quote":    insert(s.Quotes.Create, func(q *domain.Quote) int64 { return q.ID }),
		"update-quote": update(s.Quotes.Update),
		"delete-quote": remove(s.Quotes.Delete),

		"get-quote-items": with(func(ctx context.Context, p quoteRef) (any, error) {
			return result(s.Quotes.ListItems(ctx, p.QuoteID))
		}),
		"add-quote-item":    insert(s.Quotes.AddItem, func(i *domain.QuoteItem) int64 { return i.ID }),
		"delete-quote-item": remove(s.Quotes.DeleteItem),

		"get-projects": func(ctx context.Context, _ json.RawMessage) (any, error) {
			return result(s.Projects.List(ctx))
		},
		"get-project": with(func(ctx context.Context, p idPayload) (any, error) {
			return result(s.Projects.GetByID(ctx, p.ID))
		}),
		"add-project":    insert(s.Projects.Create, func(p *domain.Project) int64 { return p.ID }),
		"update-project": update(s.Projects.Update),
		"delete-project": remove(s.Projects.Delete),
		"project-summary": with(func(ctx context.Context, p idPayload) (any, error) {
			return result(s.Projects.Summary(ctx, p.ID))
		}),

		"get-project-tasks": with(func(ctx context.Context, p projectRef) (any, error) {
			return result(s.ProjectTasks.ListByProject(ctx, p.ProjectID))
		}),
		"add-project-task":    insert(s.ProjectTasks.Create, func(t *domain.ProjectTask) int64 { return t.ID }),
		"update-project-task": update(s.ProjectTasks.Update),
		"delete-project-task": remove(s.ProjectTasks.Delete),

		"get-timesheets": with(func(ctx context.Context, p projectRef) (any, error) {
			return result(s.Timesheets.ListByProject(ctx, p.ProjectID))
		}),
		"add-timesheet":    insert(s.Timesheets.Create, func(t *domain.Timesheet) int64 { return t.ID }),
		"update-timesheet": update(s.Timesheets.Update),
		"delete-timesheet": remove(s.Timesheets.Delete),
	}
}
