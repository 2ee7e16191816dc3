package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/repository"
)

type leadService struct {
	leads repository.LeadRepo
	uow   db.UnitOfWork
}

func NewLeadService(leads repository.LeadRepo, uow db.UnitOfWork) LeadService {
	return &leadService{leads: leads, uow: uow}
}

func (s *leadService) Create(ctx context.Context, l *domain.Lead) error {
	l.CreatedAt = now()
	if l.Status == "" {
		l.Status = domain.LeadNew
	}
	status, err := domain.ParseLeadStatus(string(l.Status))
	if err != nil {
		return err
	}
	l.Status = status
	if err := l.Validate(); err != nil {
		return err
	}
	return s.leads.Create(ctx, l)
}

func (s *leadService) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	return s.leads.GetByID(ctx, id)
}

func (s *leadService) List(ctx context.Context) ([]*domain.Lead, error) {
	return s.leads.List(ctx)
}

// Update checks the budget range on the merged lead and the status move
// against the lead transition table before writing.
func (s *leadService) Update(ctx context.Context, id int64, p domain.LeadPatch) (int64, error) {
	if p.IsEmpty() {
		return 0, nil
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.Status.Set {
		status, err := domain.ParseLeadStatus(string(p.Status.Value))
		if err != nil {
			return 0, err
		}
		p.Status.Value = status
	}

	var changed int64
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txLeads := repository.NewSQLiteLeadRepo(tx)

		current, err := txLeads.GetByID(ctx, id)
		if isMissing(err) {
			return nil
		}
		if err != nil {
			return err
		}

		merged := *current
		p.Apply(&merged)
		if err := merged.Validate(); err != nil {
			return err
		}
		if p.Status.Set {
			if err := current.Status.CanTransition(p.Status.Value); err != nil {
				return err
			}
		}

		changed, err = txLeads.Update(ctx, id, p)
		return err
	})
	return changed, err
}

func (s *leadService) Delete(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteFeatureRepo(tx).DeleteByLead(ctx, id); err != nil {
			return err
		}
		var err error
		deleted, err = repository.NewSQLiteLeadRepo(tx).Delete(ctx, id)
		return err
	})
	return deleted, err
}

// Convert marks the lead won and opens a project for it. Pricing comes from
// the request, then from the lead's accepted quote, then from the defaults.
func (s *leadService) Convert(ctx context.Context, req ConvertRequest) (*domain.Project, error) {
	if err := requireID("lead_id", req.LeadID); err != nil {
		return nil, err
	}

	var project *domain.Project
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txLeads := repository.NewSQLiteLeadRepo(tx)

		lead, err := txLeads.GetByID(ctx, req.LeadID)
		if err != nil {
			return err
		}
		if lead.Status == domain.LeadWon {
			return fmt.Errorf("%w: lead %d is already won", domain.ErrInvalidTransition, lead.ID)
		}
		if err := lead.Status.CanTransition(domain.LeadWon); err != nil {
			return err
		}
		if _, err := txLeads.Update(ctx, lead.ID, domain.LeadPatch{Status: domain.Some(domain.LeadWon)}); err != nil {
			return err
		}

		quotes, err := repository.NewSQLiteQuoteRepo(tx).ListByLead(ctx, lead.ID)
		if err != nil {
			return err
		}
		var accepted *domain.Quote
		for _, q := range quotes {
			if q.Status == domain.QuoteAccepted {
				accepted = q
				break
			}
		}

		leadID := lead.ID
		project = &domain.Project{
			LeadID: &leadID,
			Name: domain.CoalesceStr(
				strings.TrimSpace(req.Name),
				strings.TrimSpace(lead.ProjectName),
				lead.ClientName,
			),
			Status:     domain.ProjectActive,
			BasePrice:  req.BasePrice,
			HourlyRate: req.HourlyRate,
			CreatedAt:  now(),
		}
		if accepted != nil {
			if project.BasePrice == 0 {
				project.BasePrice = accepted.BasePrice
			}
			if project.HourlyRate == 0 {
				project.HourlyRate = accepted.HourlyRate
			}
		}
		if project.HourlyRate == 0 {
			project.HourlyRate = domain.DefaultHourlyRate
		}
		if err := project.Validate(); err != nil {
			return err
		}
		return repository.NewSQLiteProjectRepo(tx).Create(ctx, project)
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (s *leadService) Import(ctx context.Context, l *domain.Lead, features []domain.Feature) error {
	l.CreatedAt = now()
	if l.Status == "" {
		l.Status = domain.LeadNew
	}
	status, err := domain.ParseLeadStatus(string(l.Status))
	if err != nil {
		return err
	}
	l.Status = status
	if err := l.Validate(); err != nil {
		return err
	}
	for i := range features {
		features[i].Complexity = domain.ParseComplexity(string(features[i].Complexity))
		if err := features[i].Validate(); err != nil {
			return fmt.Errorf("feature %d: %w", i+1, err)
		}
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteLeadRepo(tx).Create(ctx, l); err != nil {
			return err
		}
		txFeatures := repository.NewSQLiteFeatureRepo(tx)
		for i := range features {
			features[i].LeadID = l.ID
			features[i].CreatedAt = l.CreatedAt
			if err := txFeatures.Create(ctx, &features[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
