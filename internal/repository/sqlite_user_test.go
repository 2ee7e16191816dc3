package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_DuplicateEmail(t *testing.T) {
	repo := NewSQLiteUserRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Name: "Ana", Email: "ana@example.com", CreatedAt: time.Now()}))
	err := repo.Create(ctx, &domain.User{Name: "Ana B", Email: "ana@example.com", CreatedAt: time.Now()})
	require.ErrorIs(t, err, ErrConstraint)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestTaskRepo_UpdateStatus(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := &domain.Task{Title: "Invoice", Status: domain.DefaultTaskStatus, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, task))

	n, err := repo.UpdateStatus(ctx, task.ID, "archived-by-hand")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.UpdateStatus(ctx, 999, "done")
	require.NoError(t, err)
	assert.Zero(t, n)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "archived-by-hand", tasks[0].Status)
}
