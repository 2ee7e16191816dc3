package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/repository"
)

type userService struct {
	users repository.UserRepo
}

func NewUserService(users repository.UserRepo) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(u.Email)
	u.CreatedAt = now()
	if err := u.Validate(); err != nil {
		return err
	}
	return s.users.Create(ctx, u)
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

type todoService struct {
	tasks repository.TaskRepo
}

func NewTodoService(tasks repository.TaskRepo) TodoService {
	return &todoService{tasks: tasks}
}

func (s *todoService) Create(ctx context.Context, t *domain.Task) error {
	if strings.TrimSpace(t.Status) == "" {
		t.Status = domain.DefaultTaskStatus
	}
	t.CreatedAt = now()
	if err := t.Validate(); err != nil {
		return err
	}
	return s.tasks.Create(ctx, t)
}

func (s *todoService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

// UpdateStatus accepts any non-empty label.
func (s *todoService) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	if strings.TrimSpace(status) == "" {
		return 0, fmt.Errorf("%w: status is required", domain.ErrInvalidInput)
	}
	return s.tasks.UpdateStatus(ctx, id, status)
}

type schemaService struct {
	db *sql.DB
}

func NewSchemaService(database *sql.DB) SchemaService {
	return &schemaService{db: database}
}

// CreateTables (re)applies the schema. It is safe to call on a live store.
func (s *schemaService) CreateTables(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.Migrate(s.db)
}
