package service

import (
	"context"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/repository"
)

type projectTaskService struct {
	tasks repository.ProjectTaskRepo
	uow   db.UnitOfWork
}

func NewProjectTaskService(tasks repository.ProjectTaskRepo, uow db.UnitOfWork) ProjectTaskService {
	return &projectTaskService{tasks: tasks, uow: uow}
}

// Create adds a task. A task created as done is stamped completed straight away.
func (s *projectTaskService) Create(ctx context.Context, t *domain.ProjectTask) error {
	t.CreatedAt = now()
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	status, err := domain.ParseTaskStatus(string(t.Status))
	if err != nil {
		return err
	}
	t.Status = status
	if t.Status == domain.TaskDone {
		done := t.CreatedAt
		t.CompletedAt = &done
	}
	if err := t.Validate(); err != nil {
		return err
	}
	return s.tasks.Create(ctx, t)
}

func (s *projectTaskService) GetByID(ctx context.Context, id int64) (*domain.ProjectTask, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *projectTaskService) ListByProject(ctx context.Context, projectID int64) ([]*domain.ProjectTask, error) {
	if err := requireID("project_id", projectID); err != nil {
		return nil, err
	}
	return s.tasks.ListByProject(ctx, projectID)
}

// Update writes the supplied fields. Moving to done sets completed_at; moving
// away from done keeps the earlier stamp.
func (s *projectTaskService) Update(ctx context.Context, id int64, p domain.ProjectTaskPatch) (int64, error) {
	if p.IsEmpty() {
		return 0, nil
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.Status.Set {
		status, err := domain.ParseTaskStatus(string(p.Status.Value))
		if err != nil {
			return 0, err
		}
		p.Status.Value = status
	}

	var changed int64
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteProjectTaskRepo(tx)
		if p.Status.Set {
			current, err := txTasks.GetByID(ctx, id)
			if isMissing(err) {
				return nil
			}
			if err != nil {
				return err
			}
			if err := current.Status.CanTransition(p.Status.Value); err != nil {
				return err
			}
		}
		var err error
		changed, err = txTasks.Update(ctx, id, p)
		return err
	})
	return changed, err
}

// Delete removes the task; timesheets logged against it go with it.
func (s *projectTaskService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.tasks.Delete(ctx, id)
}
