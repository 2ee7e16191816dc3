package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/bidbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCascadeDelete_ProjectToTasksAndTimesheets verifies projects -> project_tasks -> timesheets.
func TestCascadeDelete_ProjectToTasksAndTimesheets(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	projects := NewSQLiteProjectRepo(database)
	tasks := NewSQLiteProjectTaskRepo(database)
	sheets := NewSQLiteTimesheetRepo(database)

	p := testutil.NewTestProject("CascadeProj")
	require.NoError(t, projects.Create(ctx, p))
	task := testutil.NewTestProjectTask(p.ID, "Task")
	require.NoError(t, tasks.Create(ctx, task))
	ts := testutil.NewTestTimesheet(p.ID, 20, testutil.WithTask(task.ID))
	require.NoError(t, sheets.Create(ctx, ts))

	n, err := projects.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = tasks.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound, "task should be cascade-deleted with its project")
	_, err = sheets.GetByID(ctx, ts.ID)
	assert.ErrorIs(t, err, ErrNotFound, "timesheet should be cascade-deleted with its project")
}

// TestCascadeDelete_TaskToTimesheets verifies project_tasks -> timesheets.
func TestCascadeDelete_TaskToTimesheets(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	p := testutil.NewTestProject("P")
	require.NoError(t, NewSQLiteProjectRepo(database).Create(ctx, p))
	tasks := NewSQLiteProjectTaskRepo(database)
	task := testutil.NewTestProjectTask(p.ID, "Task")
	require.NoError(t, tasks.Create(ctx, task))
	sheets := NewSQLiteTimesheetRepo(database)
	linked := testutil.NewTestTimesheet(p.ID, 20, testutil.WithTask(task.ID))
	require.NoError(t, sheets.Create(ctx, linked))
	loose := testutil.NewTestTimesheet(p.ID, 10)
	require.NoError(t, sheets.Create(ctx, loose))

	_, err := tasks.Delete(ctx, task.ID)
	require.NoError(t, err)

	_, err = sheets.GetByID(ctx, linked.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = sheets.GetByID(ctx, loose.ID)
	assert.NoError(t, err, "timesheets without the task survive")
}

// TestCascadeDelete_LeadToQuotesToItems verifies leads -> quotes -> quote_items.
func TestCascadeDelete_LeadToQuotesToItems(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	leads := NewSQLiteLeadRepo(database)
	lead := testutil.NewTestLead("Acme")
	require.NoError(t, leads.Create(ctx, lead))
	quotes := NewSQLiteQuoteRepo(database)
	q := testutil.NewTestQuote(lead.ID, "Q")
	require.NoError(t, quotes.Create(ctx, q))
	items := NewSQLiteQuoteItemRepo(database)
	require.NoError(t, items.Create(ctx, testutil.NewTestQuoteItem(q.ID, "Item", nil)))

	_, err := leads.Delete(ctx, lead.ID)
	require.NoError(t, err)

	_, err = quotes.GetByID(ctx, q.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	list, err := items.ListByQuote(ctx, q.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// TestDelete_LeadNullsProjectLink verifies projects survive their lead with lead_id cleared.
func TestDelete_LeadNullsProjectLink(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	leads := NewSQLiteLeadRepo(database)
	lead := testutil.NewTestLead("Acme")
	require.NoError(t, leads.Create(ctx, lead))
	projects := NewSQLiteProjectRepo(database)
	p := testutil.NewTestProject("Build", testutil.WithLead(lead.ID))
	require.NoError(t, projects.Create(ctx, p))

	_, err := leads.Delete(ctx, lead.ID)
	require.NoError(t, err)

	got, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LeadID)
}

// TestDelete_FeatureKeepsQuoteItems verifies quote items outlive the feature they priced.
func TestDelete_FeatureKeepsQuoteItems(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	lead := testutil.NewTestLead("Acme")
	require.NoError(t, NewSQLiteLeadRepo(database).Create(ctx, lead))
	features := NewSQLiteFeatureRepo(database)
	f := testutil.NewTestFeature(lead.ID, "Checkout")
	require.NoError(t, features.Create(ctx, f))
	q := testutil.NewTestQuote(lead.ID, "Q")
	require.NoError(t, NewSQLiteQuoteRepo(database).Create(ctx, q))
	items := NewSQLiteQuoteItemRepo(database)
	require.NoError(t, items.Create(ctx, testutil.NewTestQuoteItem(q.ID, "Checkout", &f.ID)))

	n, err := features.Delete(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	list, err := items.ListByQuote(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].FeatureID)
	assert.Equal(t, f.ID, *list[0].FeatureID, "orphaned id is kept")
	assert.Nil(t, list[0].FeatureName)
	assert.Equal(t, int64(1500), list[0].TotalPrice)
}
