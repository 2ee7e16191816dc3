package importer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/bidbook/internal/domain"
)

var validComplexities = map[string]bool{"S": true, "M": true, "L": true}

// ValidateBrief checks a brief before conversion and returns every problem
// found, so a hand-written file can be fixed in one pass.
func ValidateBrief(b *Brief) []error {
	var errs []error
	errs = append(errs, validateLead(&b.Lead)...)
	errs = append(errs, validateFeatures(b.Features)...)
	return errs
}

func validateLead(l *LeadImport) []error {
	var errs []error

	if strings.TrimSpace(l.ClientName) == "" {
		errs = append(errs, fmt.Errorf("lead.client_name is required"))
	}
	if l.BudgetMin != nil && *l.BudgetMin < 0 {
		errs = append(errs, fmt.Errorf("lead.budget_min must not be negative"))
	}
	if l.BudgetMax != nil && *l.BudgetMax < 0 {
		errs = append(errs, fmt.Errorf("lead.budget_max must not be negative"))
	}
	if l.BudgetMin != nil && l.BudgetMax != nil && *l.BudgetMin > *l.BudgetMax {
		errs = append(errs, fmt.Errorf("lead: budget_min (%d) must be <= budget_max (%d)", *l.BudgetMin, *l.BudgetMax))
	}
	if l.Deadline != "" {
		if _, err := time.Parse("2006-01-02", l.Deadline); err != nil {
			errs = append(errs, fmt.Errorf("lead.deadline: invalid date format %q (expected YYYY-MM-DD)", l.Deadline))
		}
	}
	if l.Status != "" {
		s, err := domain.ParseLeadStatus(l.Status)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("lead.status: invalid value %q", l.Status))
		case s == domain.LeadWon:
			errs = append(errs, fmt.Errorf("lead.status: a brief cannot start as won; convert the lead instead"))
		}
	}

	return errs
}

func validateFeatures(features []FeatureImport) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, f := range features {
		prefix := fmt.Sprintf("features[%d]", i)
		name := strings.TrimSpace(f.Name)

		if name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if key := strings.ToLower(name); seen[key] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate feature %q", prefix, name))
		} else {
			seen[key] = true
		}

		if f.Hours < 0 || math.IsNaN(f.Hours) || math.IsInf(f.Hours, 0) {
			errs = append(errs, fmt.Errorf("%s.hours must be a non-negative number", prefix))
		}
		if f.Complexity != "" && !validComplexities[strings.ToUpper(f.Complexity)] {
			errs = append(errs, fmt.Errorf("%s.complexity: invalid value %q (expected S, M or L)", prefix, f.Complexity))
		}
	}

	return errs
}
