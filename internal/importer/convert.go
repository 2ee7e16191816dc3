package importer

import (
	"strings"

	"github.com/alexanderramin/bidbook/internal/domain"
)

// Convert turns a validated brief into a lead and its features. Lead ids on
// the features are left for the caller to fill once the lead is stored.
func Convert(b *Brief) (*domain.Lead, []domain.Feature) {
	lead := &domain.Lead{
		ClientName:  strings.TrimSpace(b.Lead.ClientName),
		ProjectName: strings.TrimSpace(b.Lead.ProjectName),
		BudgetMin:   b.Lead.BudgetMin,
		BudgetMax:   b.Lead.BudgetMax,
		Deadline:    b.Lead.Deadline,
		Notes:       b.Lead.Notes,
		Status:      domain.LeadNew,
	}
	if s, err := domain.ParseLeadStatus(b.Lead.Status); err == nil {
		lead.Status = s
	}

	features := make([]domain.Feature, 0, len(b.Features))
	for _, f := range b.Features {
		inScope := true
		if f.InScope != nil {
			inScope = *f.InScope
		}
		features = append(features, domain.Feature{
			Name:       strings.TrimSpace(f.Name),
			HoursEst:   f.Hours,
			Complexity: domain.ParseComplexity(f.Complexity),
			InScope:    inScope,
		})
	}

	return lead, features
}
