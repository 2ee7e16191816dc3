package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/estimate"
	"github.com/alexanderramin/bidbook/internal/repository"
)

type quoteService struct {
	quotes   repository.QuoteRepo
	items    repository.QuoteItemRepo
	features repository.FeatureRepo
	uow      db.UnitOfWork
}

func NewQuoteService(
	quotes repository.QuoteRepo,
	items repository.QuoteItemRepo,
	features repository.FeatureRepo,
	uow db.UnitOfWork,
) QuoteService {
	return &quoteService{quotes: quotes, items: items, features: features, uow: uow}
}

func (s *quoteService) Create(ctx context.Context, q *domain.Quote) error {
	if err := requireID("lead_id", q.LeadID); err != nil {
		return err
	}
	t := now()
	if strings.TrimSpace(q.Title) == "" {
		q.Title = domain.DefaultQuoteTitle(t)
	}
	if q.HourlyRate == 0 {
		q.HourlyRate = domain.DefaultHourlyRate
	}
	if q.Status == "" {
		q.Status = domain.QuoteDraft
	}
	status, err := domain.ParseQuoteStatus(string(q.Status))
	if err != nil {
		return err
	}
	q.Status = status
	q.CreatedAt = t
	q.UpdatedAt = t
	if err := q.Validate(); err != nil {
		return err
	}
	return s.quotes.Create(ctx, q)
}

func (s *quoteService) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	return s.quotes.GetByID(ctx, id)
}

func (s *quoteService) ListByLead(ctx context.Context, leadID int64) ([]*domain.Quote, error) {
	if err := requireID("lead_id", leadID); err != nil {
		return nil, err
	}
	return s.quotes.ListByLead(ctx, leadID)
}

func (s *quoteService) Update(ctx context.Context, id int64, p domain.QuotePatch) (int64, error) {
	if p.IsEmpty() {
		return 0, nil
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.Status.Set {
		status, err := domain.ParseQuoteStatus(string(p.Status.Value))
		if err != nil {
			return 0, err
		}
		p.Status.Value = status
	}

	var changed int64
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txQuotes := repository.NewSQLiteQuoteRepo(tx)
		if p.Status.Set {
			current, err := txQuotes.GetByID(ctx, id)
			if isMissing(err) {
				return nil
			}
			if err != nil {
				return err
			}
			if err := current.Status.CanTransition(p.Status.Value); err != nil {
				return err
			}
		}
		var err error
		changed, err = txQuotes.Update(ctx, id, p)
		return err
	})
	return changed, err
}

// Delete removes the quote and, through the schema, its items.
func (s *quoteService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.quotes.Delete(ctx, id)
}

func (s *quoteService) AddItem(ctx context.Context, i *domain.QuoteItem) error {
	i.Complexity = domain.ParseComplexity(string(i.Complexity))
	i.CreatedAt = now()
	if err := i.Validate(); err != nil {
		return err
	}
	return s.items.Create(ctx, i)
}

func (s *quoteService) ListItems(ctx context.Context, quoteID int64) ([]*domain.QuoteItemView, error) {
	if err := requireID("quote_id", quoteID); err != nil {
		return nil, err
	}
	return s.items.ListByQuote(ctx, quoteID)
}

func (s *quoteService) DeleteItem(ctx context.Context, id int64) (int64, error) {
	return s.items.Delete(ctx, id)
}

func (s *quoteService) Calculate(ctx context.Context, leadID int64, p estimate.Params) (*estimate.Breakdown, error) {
	if err := requireID("lead_id", leadID); err != nil {
		return nil, err
	}
	p, err := p.Resolve()
	if err != nil {
		return nil, err
	}
	features, err := s.features.ListByLead(ctx, leadID)
	if err != nil {
		return nil, err
	}
	b := estimate.Calculate(features, p)
	return &b, nil
}

// Generate reads the features, prices them and writes the quote header and
// its items in one transaction. Items are inserted once the header id exists.
func (s *quoteService) Generate(ctx context.Context, req GenerateRequest) (*GeneratedQuote, error) {
	if err := requireID("lead_id", req.LeadID); err != nil {
		return nil, err
	}
	params, err := req.Params.Resolve()
	if err != nil {
		return nil, err
	}

	var out *GeneratedQuote
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		features, err := repository.NewSQLiteFeatureRepo(tx).ListByLead(ctx, req.LeadID)
		if err != nil {
			return err
		}
		b := estimate.Calculate(features, params)

		t := now()
		title := strings.TrimSpace(req.Title)
		if title == "" {
			title = domain.DefaultQuoteTitle(t)
		}
		q := &domain.Quote{
			LeadID:     req.LeadID,
			Title:      title,
			BasePrice:  b.BasePrice,
			HourlyRate: b.HourlyRate,
			TotalHours: b.TotalHours,
			TotalPrice: b.TotalPrice,
			Status:     domain.QuoteDraft,
			Notes:      req.Notes,
			CreatedAt:  t,
			UpdatedAt:  t,
		}
		if err := repository.NewSQLiteQuoteRepo(tx).Create(ctx, q); err != nil {
			return err
		}

		txItems := repository.NewSQLiteQuoteItemRepo(tx)
		for _, line := range b.QuoteItems {
			featureID := line.FeatureID
			item := &domain.QuoteItem{
				QuoteID:     q.ID,
				FeatureID:   &featureID,
				ItemName:    line.ItemName,
				Hours:       line.Hours,
				RatePerHour: line.RatePerHour,
				TotalPrice:  line.TotalPrice,
				Complexity:  line.Complexity,
				CreatedAt:   t,
			}
			if err := txItems.Create(ctx, item); err != nil {
				return err
			}
		}

		out = &GeneratedQuote{QuoteID: q.ID, Breakdown: b}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
