package service

import (
	"context"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/repository"
)

type featureService struct {
	features repository.FeatureRepo
}

func NewFeatureService(features repository.FeatureRepo) FeatureService {
	return &featureService{features: features}
}

// Create stores a feature; a missing lead surfaces as a foreign key violation.
func (s *featureService) Create(ctx context.Context, f *domain.Feature) error {
	if err := requireID("lead_id", f.LeadID); err != nil {
		return err
	}
	f.Complexity = domain.ParseComplexity(string(f.Complexity))
	f.CreatedAt = now()
	if err := f.Validate(); err != nil {
		return err
	}
	return s.features.Create(ctx, f)
}

func (s *featureService) ListByLead(ctx context.Context, leadID int64) ([]domain.Feature, error) {
	if err := requireID("lead_id", leadID); err != nil {
		return nil, err
	}
	return s.features.ListByLead(ctx, leadID)
}

func (s *featureService) Update(ctx context.Context, id int64, p domain.FeaturePatch) (int64, error) {
	if p.IsEmpty() {
		return 0, nil
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return s.features.Update(ctx, id, p)
}

// Delete removes one feature. Quote items priced from it keep their snapshot.
func (s *featureService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.features.Delete(ctx, id)
}
