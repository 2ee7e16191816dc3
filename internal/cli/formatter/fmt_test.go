package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/estimate"
	"github.com/stretchr/testify/assert"
)

func TestFormatBreakdown_ShowsLadder(t *testing.T) {
	br := estimate.Calculate([]domain.Feature{
		{ID: 1, Name: "Login", HoursEst: 4, Complexity: domain.ComplexitySmall, InScope: true},
		{ID: 2, Name: "Payments", HoursEst: 6, Complexity: domain.ComplexityLarge, InScope: true},
	}, estimate.Params{HourlyRate: 500})

	out := FormatBreakdown("Estimate", &br)

	assert.Contains(t, out, "Login")
	assert.Contains(t, out, "Payments")
	assert.Contains(t, out, "8,600")
	assert.Contains(t, out, "10h")
}

func TestFormatBreakdown_NoFeatures(t *testing.T) {
	br := estimate.Calculate(nil, estimate.Params{HourlyRate: 500})
	out := FormatBreakdown("Estimate", &br)
	assert.Contains(t, out, "No in-scope features.")
}

func TestFormatLeadDetail(t *testing.T) {
	lo := int64(5000)
	lead := &domain.Lead{ID: 3, ClientName: "Acme", Status: domain.LeadQualified, BudgetMin: &lo, CreatedAt: time.Now()}
	features := []domain.Feature{{ID: 1, Name: "Login", HoursEst: 4, Complexity: domain.ComplexitySmall, InScope: false}}
	quotes := []*domain.Quote{{ID: 7, Title: "Quote-2026-01-01", TotalPrice: 12000, Status: domain.QuoteSent}}

	out := FormatLeadDetail(lead, features, quotes)

	assert.Contains(t, out, "LEAD #3")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "out")
	assert.Contains(t, out, "12,000")
	assert.Contains(t, out, "Sent")
}

func TestFormatQuoteDetail_FeatureReference(t *testing.T) {
	fid, gone := int64(1), int64(2)
	name, hours := "Login", 6.0
	q := &domain.Quote{ID: 1, LeadID: 1, Title: "Q", Status: domain.QuoteDraft}
	items := []*domain.QuoteItemView{
		{QuoteItem: domain.QuoteItem{ID: 1, ItemName: "Login", Hours: 4, FeatureID: &fid}, FeatureName: &name, FeatureHours: &hours},
		{QuoteItem: domain.QuoteItem{ID: 2, ItemName: "Old", Hours: 2, FeatureID: &gone}},
		{QuoteItem: domain.QuoteItem{ID: 3, ItemName: "Manual", Hours: 1}},
	}

	out := FormatQuoteDetail(q, items)

	assert.Contains(t, out, "now 6h")
	assert.Contains(t, out, "#2 (deleted)")
	assert.Contains(t, out, "Manual")
}

func TestFormatProjectSummary(t *testing.T) {
	client := "Acme"
	p := &domain.ProjectView{Project: domain.Project{ID: 1, Name: "Portal", Status: domain.ProjectActive}, ClientName: &client}
	s := &domain.ProjectSummary{
		ProjectID:      1,
		TaskCounts:     map[domain.TaskStatus]int{domain.TaskTodo: 1, domain.TaskDoing: 0, domain.TaskDone: 1},
		TotalTasks:     2,
		LoggedMinutes:  125,
		HourlyRate:     600,
		BillableAmount: 1250,
	}

	out := FormatProjectSummary(p, s)

	assert.Contains(t, out, "PORTAL")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "1/2 done")
	assert.Contains(t, out, "2h 5m")
	assert.Contains(t, out, "1,250")
}

func TestFormatTimesheetList_Total(t *testing.T) {
	title := "Build"
	entries := []*domain.TimesheetView{
		{Timesheet: domain.Timesheet{ID: 1, StartTime: time.Now(), DurationMinutes: 45}, TaskTitle: &title},
		{Timesheet: domain.Timesheet{ID: 2, StartTime: time.Now(), DurationMinutes: 80}},
	}
	out := FormatTimesheetList(entries)
	assert.Contains(t, out, "Build")
	assert.Contains(t, out, "2h 5m")
}
