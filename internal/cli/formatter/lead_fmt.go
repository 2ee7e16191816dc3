package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/estimate"
)

func FormatLeadList(leads []*domain.Lead) string {
	headers := []string{"ID", "CLIENT", "PROJECT", "BUDGET", "DEADLINE", "STATUS"}
	rows := make([][]string, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", l.ID),
			Bold(l.ClientName),
			OrDash(l.ProjectName),
			Budget(l.BudgetMin, l.BudgetMax),
			OrDash(l.Deadline),
			LeadStatusPill(l.Status),
		})
	}
	return RenderBox("Leads", RenderTable(headers, rows))
}

// FormatLeadDetail shows one lead with its feature list and quote history.
func FormatLeadDetail(l *domain.Lead, features []domain.Feature, quotes []*domain.Quote) string {
	var b strings.Builder
	b.WriteString(RenderFields([][2]string{
		{"Client", Bold(l.ClientName)},
		{"Project", OrDash(l.ProjectName)},
		{"Budget", Budget(l.BudgetMin, l.BudgetMax)},
		{"Deadline", OrDash(l.Deadline)},
		{"Status", LeadStatusPill(l.Status)},
		{"Created", HumanDate(l.CreatedAt)},
	}))
	if strings.TrimSpace(l.Notes) != "" {
		b.WriteString("\n\n" + Dim(l.Notes))
	}

	b.WriteString("\n\n" + Header("Features") + "\n")
	if len(features) == 0 {
		b.WriteString(Dim("No features yet."))
	} else {
		b.WriteString(featureTable(features))
	}

	if len(quotes) > 0 {
		b.WriteString("\n" + Header("Quotes") + "\n")
		b.WriteString(quoteTable(quotes))
	}

	return RenderBox(fmt.Sprintf("Lead #%d", l.ID), strings.TrimRight(b.String(), "\n"))
}

func FormatFeatureList(features []domain.Feature) string {
	return RenderBox("Features", featureTable(features))
}

func featureTable(features []domain.Feature) string {
	headers := []string{"ID", "FEATURE", "HOURS", "CPLX", "SCOPE"}
	rows := make([][]string, 0, len(features))
	for _, f := range features {
		scope := StyleGreen.Render("in")
		if !f.InScope {
			scope = Dim("out")
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d", f.ID),
			f.Name,
			Hours(f.HoursEst),
			ComplexityBadge(f.Complexity),
			scope,
		})
	}
	return RenderTable(headers, rows)
}

// FormatBreakdown renders a calculated estimate: one row per priced feature
// followed by the three-tier ladder.
func FormatBreakdown(title string, br *estimate.Breakdown) string {
	headers := []string{"ITEM", "HOURS", "CPLX", "RATE", "PRICE"}
	rows := make([][]string, 0, len(br.QuoteItems))
	for _, it := range br.QuoteItems {
		rows = append(rows, []string{
			it.ItemName,
			Hours(it.Hours),
			ComplexityBadge(it.Complexity),
			Money(it.RatePerHour),
			Money(it.TotalPrice),
		})
	}

	var b strings.Builder
	if len(rows) == 0 {
		b.WriteString(Dim("No in-scope features.") + "\n")
	} else {
		b.WriteString(RenderTable(headers, rows))
	}
	b.WriteString("\n")
	b.WriteString(RenderFields([][2]string{
		{"Base price", Money(br.BasePrice)},
		{"Hourly rate", Money(br.HourlyRate)},
		{"Total hours", Hours(br.TotalHours)},
		{"Basic", Money(br.Pricing.Basic)},
		{"Standard", Bold(Money(br.Pricing.Standard))},
		{"Premium", Money(br.Pricing.Premium)},
	}))
	return RenderBox(title, b.String())
}
