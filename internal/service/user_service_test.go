package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/repository"
	"github.com/alexanderramin/bidbook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate_DuplicateEmail(t *testing.T) {
	svc := NewUserService(repository.NewSQLiteUserRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &domain.User{Name: "Ana", Email: "ana@example.com"}))
	err := svc.Create(ctx, &domain.User{Name: "Other", Email: "ana@example.com"})
	assert.ErrorIs(t, err, repository.ErrConstraint)

	assert.ErrorIs(t, svc.Create(ctx, &domain.User{Name: "No mail"}), domain.ErrInvalidInput)
}

func TestTodo_DefaultStatusAndFreeLabels(t *testing.T) {
	svc := NewTodoService(repository.NewSQLiteTaskRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	task := &domain.Task{Title: "Send invoice"}
	require.NoError(t, svc.Create(ctx, task))
	assert.Equal(t, "pending", task.Status)

	n, err := svc.UpdateStatus(ctx, task.ID, "waiting on client")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = svc.UpdateStatus(ctx, task.ID, " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSchema_CreateTablesIsRepeatable(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewSchemaService(database)
	require.NoError(t, svc.CreateTables(context.Background()))
	require.NoError(t, svc.CreateTables(context.Background()))
}
