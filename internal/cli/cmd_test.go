package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/bidbook/internal/config"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/gateway"
	"github.com/alexanderramin/bidbook/internal/testutil"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	svc := gateway.NewServices(testutil.NewTestDB(t))
	cfg := config.Default()
	cfg.DB.Path = ":memory:"
	return &App{
		Services: svc,
		Gateway:  gateway.New(svc),
		Config:   cfg,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func mustExecute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err, out)
	return out
}

func seedAcme(t *testing.T, app *App) *domain.Lead {
	t.Helper()
	ctx := context.Background()
	l := testutil.NewTestLead("Acme", testutil.WithProjectName("Storefront"))
	require.NoError(t, app.Leads.Create(ctx, l))
	require.NoError(t, app.Features.Create(ctx, testutil.NewTestFeature(l.ID, "Checkout",
		testutil.WithHours(10), testutil.WithComplexity(domain.ComplexityLarge))))
	require.NoError(t, app.Features.Create(ctx, testutil.NewTestFeature(l.ID, "Blog",
		testutil.WithHours(40), testutil.OutOfScope())))
	return l
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "bidbook")
	assert.Contains(t, output, "lead")
	assert.Contains(t, output, "timesheet")
}

func TestInitCmd(t *testing.T) {
	app := testApp(t)
	out := mustExecute(t, app, "init")
	assert.Contains(t, out, "Database ready")
}

// --- lead ---

func TestLeadAddAndList(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "lead", "add", "--client", "Acme", "--project", "Storefront",
		"--budget-min", "5000", "--budget-max", "12000")
	assert.Contains(t, out, "Created lead #1 for Acme")

	out = mustExecute(t, app, "lead", "list")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Storefront")
	assert.Contains(t, out, "5,000 – 12,000")
}

func TestLeadAdd_Validation(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "lead", "add", "--client", "Acme", "--budget-min", "10", "--budget-max", "5")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCmd(t, app, "lead", "add", "--client", "Acme", "--budget-min", "lots")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCmd(t, app, "lead", "add", "--client", "Acme", "--status", "maybe")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestLeadAdd_InteractiveUsesForm(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }

	orig := runForm
	t.Cleanup(func() { runForm = orig })
	runForm = func(*huh.Form) error { return nil }

	// With the form stubbed out the collected input stays empty.
	_, err := executeCmd(t, app, "lead", "add")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLeadShow(t *testing.T) {
	app := testApp(t)
	l := seedAcme(t, app)

	out := mustExecute(t, app, "lead", "show", itoa(l.ID))
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Checkout")
	assert.Contains(t, out, "Blog")
}

func TestLeadUpdate_OnlyChangedFlags(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	l := testutil.NewTestLead("Acme", testutil.WithProjectName("Storefront"), testutil.WithBudget(100, 900))
	require.NoError(t, app.Leads.Create(ctx, l))

	out := mustExecute(t, app, "lead", "update", itoa(l.ID), "--notes", "call back", "--budget-max", "none")
	assert.Contains(t, out, "Updated lead")

	got, err := app.Leads.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "call back", got.Notes)
	assert.Equal(t, "Storefront", got.ProjectName)
	assert.Nil(t, got.BudgetMax)
	require.NotNil(t, got.BudgetMin)
	assert.Equal(t, int64(100), *got.BudgetMin)
}

func TestLeadUpdate_NoFlags(t *testing.T) {
	app := testApp(t)
	l := seedAcme(t, app)

	out := mustExecute(t, app, "lead", "update", itoa(l.ID))
	assert.Contains(t, out, "No changes")
}

func TestLeadUpdate_InvalidTransition(t *testing.T) {
	app := testApp(t)
	l := seedAcme(t, app)

	_, err := executeCmd(t, app, "lead", "update", itoa(l.ID), "--status", "negotiating")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestLeadDelete(t *testing.T) {
	app := testApp(t)
	l := seedAcme(t, app)

	out := mustExecute(t, app, "lead", "delete", itoa(l.ID), "--yes")
	assert.Contains(t, out, "Deleted lead")

	out = mustExecute(t, app, "lead", "delete", itoa(l.ID), "--yes")
	assert.Contains(t, out, "No lead")
}

func TestLeadDelete_DeclinedConfirmation(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	l := seedAcme(t, app)

	orig := runForm
	t.Cleanup(func() { runForm = orig })
	runForm = func(*huh.Form) error { return nil } // answer stays "No"

	out := mustExecute(t, app, "lead", "delete", itoa(l.ID))
	assert.NotContains(t, out, "Deleted")

	_, err := app.Leads.GetByID(context.Background(), l.ID)
	assert.NoError(t, err)
}

func TestLeadConvert(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	l := testutil.NewTestLead("Acme", testutil.WithProjectName("Storefront"), testutil.WithLeadStatus(domain.LeadQualified))
	require.NoError(t, app.Leads.Create(ctx, l))

	out := mustExecute(t, app, "lead", "convert", itoa(l.ID), "--hourly-rate", "650")
	assert.Contains(t, out, "Storefront")
	assert.Contains(t, out, "650/h")

	got, err := app.Leads.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadWon, got.Status)

	_, err = executeCmd(t, app, "lead", "convert", itoa(l.ID))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// --- feature and quote ---

func TestFeatureCmds(t *testing.T) {
	app := testApp(t)
	l := seedAcme(t, app)

	out := mustExecute(t, app, "feature", "add", "--lead", itoa(l.ID), "--name", "Search", "--hours", "2.5", "--complexity", "s")
	assert.Contains(t, out, `"Search" (2.5h, S)`)

	out = mustExecute(t, app, "feature", "update", "3", "--in-scope", "false", "--hours", "3")
	assert.Contains(t, out, "Updated feature #3")

	features, err := app.Features.ListByLead(context.Background(), l.ID)
	require.NoError(t, err)
	require.Len(t, features, 3)
	assert.False(t, features[2].InScope)
	assert.Equal(t, 3.0, features[2].HoursEst)

	_, err = executeCmd(t, app, "feature", "update", "3", "--in-scope", "sometimes")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out = mustExecute(t, app, "feature", "list", "--lead", itoa(l.ID))
	assert.Contains(t, out, "Checkout")

	out = mustExecute(t, app, "feature", "delete", "3", "-y")
	assert.Contains(t, out, "Deleted feature #3")
}

func TestFeatureAdd_RequiresLead(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "feature", "add", "--name", "Search")
	assert.Error(t, err)
}

func TestQuoteCalc_AcmeScenario(t *testing.T) {
	app := testApp(t)
	l := seedAcme(t, app)

	out := mustExecute(t, app, "quote", "calc", "--lead", itoa(l.ID), "--base-price", "1000")

	assert.Contains(t, out, "Checkout")
	assert.NotContains(t, out, "Blog")
	assert.Contains(t, out, "9,600")
	assert.Contains(t, out, "12,000")
	assert.Contains(t, out, "15,000")

	quotes, err := app.Quotes.ListByLead(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestQuoteCalc_UsesConfiguredRate(t *testing.T) {
	app := testApp(t)
	app.Config.Pricing.HourlyRate = 1000
	l := seedAcme(t, app)

	out := mustExecute(t, app, "quote", "calc", "--lead", itoa(l.ID))
	// 10h × 1000 × 2.2
	assert.Contains(t, out, "22,000")
}

func TestQuoteGenerateShowUpdate(t *testing.T) {
	app := testApp(t)
	l := seedAcme(t, app)

	out := mustExecute(t, app, "quote", "generate", "--lead", itoa(l.ID), "--title", "Storefront v1", "--base-price", "1000")
	assert.Contains(t, out, "Saved quote #1 with 1 items")

	out = mustExecute(t, app, "quote", "show", "1")
	assert.Contains(t, out, "STOREFRONT V1")
	assert.Contains(t, out, "Checkout")
	assert.Contains(t, out, "12,000")

	out = mustExecute(t, app, "quote", "list", "--lead", itoa(l.ID))
	assert.Contains(t, out, "Draft")

	mustExecute(t, app, "quote", "update", "1", "--status", "sent")
	_, err := executeCmd(t, app, "quote", "update", "1", "--status", "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	out = mustExecute(t, app, "quote", "item", "add", "--quote", "1", "--name", "Hosting setup", "--hours", "2", "--rate", "500", "--complexity", "S")
	assert.Contains(t, out, "at 1,000")

	out = mustExecute(t, app, "quote", "item", "delete", "2")
	assert.Contains(t, out, "Deleted quote item #2")

	out = mustExecute(t, app, "quote", "delete", "1", "--yes")
	assert.Contains(t, out, "Deleted quote #1")
}

// --- projects, tasks, timesheets ---

func TestProjectTaskTimesheetFlow(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "project", "add", "--name", "Portal", "--hourly-rate", "600")
	assert.Contains(t, out, `Created project #1 "Portal"`)

	mustExecute(t, app, "task", "add", "--project", "1", "--title", "Design")
	mustExecute(t, app, "task", "add", "--project", "1", "--title", "Build")
	out = mustExecute(t, app, "task", "done", "1")
	assert.Contains(t, out, "Updated task #1")

	mustExecute(t, app, "timesheet", "add", "--project", "1", "--task", "2", "--minutes", "45", "--description", "wiring")
	mustExecute(t, app, "timesheet", "add", "--project", "1",
		"--start", "2026-03-02 09:00", "--end", "2026-03-02 10:20")

	out = mustExecute(t, app, "timesheet", "list", "--project", "1")
	assert.Contains(t, out, "Build")
	assert.Contains(t, out, "1h 20m")
	assert.Contains(t, out, "2h 5m")

	out = mustExecute(t, app, "project", "summary", "1")
	assert.Contains(t, out, "PORTAL")
	assert.Contains(t, out, "1 todo · 0 doing · 1 done")
	assert.Contains(t, out, "2h 5m")
	assert.Contains(t, out, "1,250")

	out = mustExecute(t, app, "task", "list", "--project", "1")
	assert.Contains(t, out, "Design")
	assert.Contains(t, out, "Done")
}

func TestTaskReopen_KeepsCompletedAt(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "project", "add", "--name", "Portal")
	mustExecute(t, app, "task", "add", "--project", "1", "--title", "Design", "--status", "done")

	mustExecute(t, app, "task", "update", "1", "--status", "todo")

	task, err := app.ProjectTasks.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskTodo, task.Status)
	assert.NotNil(t, task.CompletedAt)
}

func TestProjectUpdate(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "project", "add", "--name", "Portal")

	out := mustExecute(t, app, "project", "update", "1", "--status", "paused", "--hourly-rate", "700")
	assert.Contains(t, out, "Updated project #1")

	p, err := app.Projects.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectPaused, p.Status)
	assert.Equal(t, int64(700), p.HourlyRate)

	_, err = executeCmd(t, app, "project", "update", "1", "--hourly-rate", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out = mustExecute(t, app, "project", "delete", "1", "--yes")
	assert.Contains(t, out, "Deleted project #1")
}

func TestTimesheetAdd_RejectsEndBeforeStart(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "project", "add", "--name", "Portal")

	_, err := executeCmd(t, app, "timesheet", "add", "--project", "1",
		"--start", "2026-03-02 10:00", "--end", "2026-03-02 09:00")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTimesheetUpdateAndDelete(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "project", "add", "--name", "Portal")
	mustExecute(t, app, "timesheet", "add", "--project", "1", "--minutes", "30")

	out := mustExecute(t, app, "timesheet", "update", "1", "--minutes", "50", "--description", "review")
	assert.Contains(t, out, "Updated timesheet #1")

	out = mustExecute(t, app, "timesheet", "list", "--project", "1")
	assert.Contains(t, out, "50m")
	assert.Contains(t, out, "review")

	out = mustExecute(t, app, "timesheet", "delete", "1")
	assert.Contains(t, out, "Deleted timesheet #1")
}

func TestTimesheetTrack_RequiresTerminal(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "timesheet", "track", "--project", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

// --- legacy lists ---

func TestUserAndTodoCmds(t *testing.T) {
	app := testApp(t)

	mustExecute(t, app, "user", "add", "--name", "Ada", "--email", "ada@example.com")
	_, err := executeCmd(t, app, "user", "add", "--name", "Ada", "--email", "ada@example.com")
	assert.Error(t, err, "email is unique")

	out := mustExecute(t, app, "user", "list")
	assert.Contains(t, out, "ada@example.com")

	out = mustExecute(t, app, "todo", "add", "--title", "Invoice Acme")
	assert.Contains(t, out, "Added todo #1")

	mustExecute(t, app, "todo", "status", "1", "waiting-on-client")
	out = mustExecute(t, app, "todo", "list")
	assert.Contains(t, out, "waiting-on-client")
}

// --- call ---

func TestCallCmd(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "call", "add-lead", `{"client_name":"Acme"}`)
	assert.Contains(t, out, `"success": true`)
	assert.Contains(t, out, `"id": 1`)

	out, err := executeCmd(t, app, "call", "get-lead", `{"id":99}`)
	assert.Error(t, err)
	assert.Contains(t, out, `"success": false`)

	out = mustExecute(t, app, "call", "--list")
	assert.Contains(t, out, "calculate-quote")
	assert.Contains(t, out, "update-task-status")
}

func TestCallCmd_PayloadFromStdin(t *testing.T) {
	app := testApp(t)
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetIn(bytes.NewBufferString(`{"client_name":"Globex"}`))
	root.SetArgs([]string{"call", "add-lead", "-"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), `"success": true`)

	leads, err := app.Leads.List(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Globex", leads[0].ClientName)
}
