package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bidbook/internal/domain"
)

func FormatQuoteList(quotes []*domain.Quote) string {
	return RenderBox("Quotes", quoteTable(quotes))
}

func quoteTable(quotes []*domain.Quote) string {
	headers := []string{"ID", "TITLE", "HOURS", "TOTAL", "STATUS"}
	rows := make([][]string, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", q.ID),
			q.Title,
			Hours(q.TotalHours),
			Money(q.TotalPrice),
			QuoteStatusPill(q.Status),
		})
	}
	return RenderTable(headers, rows)
}

// FormatQuoteDetail shows a stored quote with its line items. Items whose
// feature was later changed show the feature's current hours alongside.
func FormatQuoteDetail(q *domain.Quote, items []*domain.QuoteItemView) string {
	var b strings.Builder
	b.WriteString(RenderFields([][2]string{
		{"Lead", fmt.Sprintf("#%d", q.LeadID)},
		{"Status", QuoteStatusPill(q.Status)},
		{"Base price", Money(q.BasePrice)},
		{"Hourly rate", Money(q.HourlyRate)},
		{"Total hours", Hours(q.TotalHours)},
		{"Total", Bold(Money(q.TotalPrice))},
	}))
	if strings.TrimSpace(q.Notes) != "" {
		b.WriteString("\n\n" + Dim(q.Notes))
	}

	if len(items) > 0 {
		headers := []string{"ID", "ITEM", "HOURS", "CPLX", "PRICE", "FEATURE"}
		rows := make([][]string, 0, len(items))
		for _, it := range items {
			rows = append(rows, []string{
				fmt.Sprintf("#%d", it.ID),
				it.ItemName,
				Hours(it.Hours),
				ComplexityBadge(it.Complexity),
				Money(it.TotalPrice),
				featureRef(it),
			})
		}
		b.WriteString("\n\n" + Header("Items") + "\n")
		b.WriteString(strings.TrimRight(RenderTable(headers, rows), "\n"))
	}

	return RenderBox(q.Title, b.String())
}

func featureRef(it *domain.QuoteItemView) string {
	if it.FeatureID == nil {
		return Dim("--")
	}
	if it.FeatureName == nil {
		return Dim(fmt.Sprintf("#%d (deleted)", *it.FeatureID))
	}
	ref := fmt.Sprintf("#%d %s", *it.FeatureID, *it.FeatureName)
	if it.FeatureHours != nil && *it.FeatureHours != it.Hours {
		ref += StyleYellow.Render(" now " + Hours(*it.FeatureHours))
	}
	return ref
}
