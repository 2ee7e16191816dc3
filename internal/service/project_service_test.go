package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/repository"
	"github.com/alexanderramin/bidbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectUpdate_Transitions(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	p := s.project(t, "Site")

	_, err := s.projects.Update(ctx, p.ID, domain.ProjectPatch{Status: domain.Some(domain.ProjectCompleted)})
	require.NoError(t, err)

	_, err = s.projects.Update(ctx, p.ID, domain.ProjectPatch{Status: domain.Some(domain.ProjectPaused)})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	n, err := s.projects.Update(ctx, p.ID, domain.ProjectPatch{Status: domain.Some(domain.ProjectActive)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestProjectSummary(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	p := s.project(t, "Site", testutil.WithHourlyRate(600))

	for _, title := range []string{"A", "B", "C"} {
		require.NoError(t, s.tasks.Create(ctx, testutil.NewTestProjectTask(p.ID, title)))
	}
	done := testutil.NewTestProjectTask(p.ID, "D")
	done.Status = domain.TaskDone
	require.NoError(t, s.tasks.Create(ctx, done))
	require.NotNil(t, done.CompletedAt)

	require.NoError(t, s.timesheets.Create(ctx, testutil.NewTestTimesheet(p.ID, 90)))
	require.NoError(t, s.timesheets.Create(ctx, testutil.NewTestTimesheet(p.ID, 35)))

	sum, err := s.projects.Summary(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.TotalTasks)
	assert.Equal(t, 3, sum.TaskCounts[domain.TaskTodo])
	assert.Equal(t, 1, sum.TaskCounts[domain.TaskDone])
	assert.Equal(t, 0, sum.TaskCounts[domain.TaskDoing])
	assert.Equal(t, 125, sum.LoggedMinutes)
	assert.Equal(t, int64(1250), sum.BillableAmount)
}

func TestProjectSummary_NotFound(t *testing.T) {
	s := newServices(t)
	_, err := s.projects.Summary(context.Background(), 77)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectTask_DoneThenReopen(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	p := s.project(t, "Site")
	task := testutil.NewTestProjectTask(p.ID, "Launch")
	require.NoError(t, s.tasks.Create(ctx, task))
	assert.Nil(t, task.CompletedAt)

	before := time.Now().UTC().Add(-time.Second)
	n, err := s.tasks.Update(ctx, task.ID, domain.ProjectTaskPatch{Status: domain.Some(domain.TaskDone)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CompletedAt)
	assert.False(t, got.CompletedAt.Before(before))

	_, err = s.tasks.Update(ctx, task.ID, domain.ProjectTaskPatch{Status: domain.Some(domain.TaskTodo)})
	require.NoError(t, err)

	got, err = s.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskTodo, got.Status)
	assert.NotNil(t, got.CompletedAt)
}

func TestProjectDelete_CascadesThroughTasks(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	p := s.project(t, "Site")
	task := testutil.NewTestProjectTask(p.ID, "T")
	require.NoError(t, s.tasks.Create(ctx, task))
	require.NoError(t, s.timesheets.Create(ctx, testutil.NewTestTimesheet(p.ID, 15, testutil.WithTask(task.ID))))

	n, err := s.projects.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	tasks, err := s.tasks.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	sheets, err := s.timesheets.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, sheets)
}

func TestTimesheet_TaskMustShareProject(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	a := s.project(t, "A")
	b := s.project(t, "B")
	taskB := testutil.NewTestProjectTask(b.ID, "B task")
	require.NoError(t, s.tasks.Create(ctx, taskB))

	err := s.timesheets.Create(ctx, testutil.NewTestTimesheet(a.ID, 10, testutil.WithTask(taskB.ID)))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ts := testutil.NewTestTimesheet(a.ID, 10)
	require.NoError(t, s.timesheets.Create(ctx, ts))
	_, err = s.timesheets.Update(ctx, ts.ID, domain.TimesheetPatch{TaskID: domain.Some(taskB.ID)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTimesheet_DurationFromEndTime(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	p := s.project(t, "Site")

	start := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(75 * time.Minute)
	ts := &domain.Timesheet{ProjectID: p.ID, StartTime: start, EndTime: &end}
	require.NoError(t, s.timesheets.Create(ctx, ts))
	assert.Equal(t, 75, ts.DurationMinutes)

	_, err := s.timesheets.Update(ctx, ts.ID, domain.TimesheetPatch{EndTime: domain.Some(start.Add(-time.Hour))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProjectTask_StatusStoredLowercase(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	p := s.project(t, "Site")

	created := testutil.NewTestProjectTask(p.ID, "Design")
	created.Status = "Done"
	require.NoError(t, s.tasks.Create(ctx, created))
	assert.Equal(t, domain.TaskDone, created.Status)
	assert.NotNil(t, created.CompletedAt)

	task := testutil.NewTestProjectTask(p.ID, "Launch")
	require.NoError(t, s.tasks.Create(ctx, task))
	_, err := s.tasks.Update(ctx, task.ID, domain.ProjectTaskPatch{Status: domain.Some(domain.TaskStatus("DONE"))})
	require.NoError(t, err)

	got, err := s.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDone, got.Status)
	assert.NotNil(t, got.CompletedAt, "mixed-case done still stamps completed_at")

	_, err = s.projects.Update(ctx, p.ID, domain.ProjectPatch{Status: domain.Some(domain.ProjectStatus("Paused"))})
	require.NoError(t, err)
	view, err := s.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectPaused, view.Status)
}
