package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/repository"
)

type timesheetService struct {
	timesheets repository.TimesheetRepo
	uow        db.UnitOfWork
}

func NewTimesheetService(timesheets repository.TimesheetRepo, uow db.UnitOfWork) TimesheetService {
	return &timesheetService{timesheets: timesheets, uow: uow}
}

// Create logs time. When a task is named it must belong to the same project;
// a missing duration is derived from start and end.
func (s *timesheetService) Create(ctx context.Context, t *domain.Timesheet) error {
	t.CreatedAt = now()
	t.FillDuration()
	if err := t.Validate(); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := checkTaskProject(ctx, repository.NewSQLiteProjectTaskRepo(tx), t); err != nil {
			return err
		}
		return repository.NewSQLiteTimesheetRepo(tx).Create(ctx, t)
	})
}

func (s *timesheetService) ListByProject(ctx context.Context, projectID int64) ([]*domain.TimesheetView, error) {
	if err := requireID("project_id", projectID); err != nil {
		return nil, err
	}
	return s.timesheets.ListByProject(ctx, projectID)
}

func (s *timesheetService) Update(ctx context.Context, id int64, p domain.TimesheetPatch) (int64, error) {
	if p.IsEmpty() {
		return 0, nil
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	var changed int64
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSheets := repository.NewSQLiteTimesheetRepo(tx)
		current, err := txSheets.GetByID(ctx, id)
		if isMissing(err) {
			return nil
		}
		if err != nil {
			return err
		}

		merged := current.Timesheet
		p.Apply(&merged)
		if err := merged.Validate(); err != nil {
			return err
		}
		if p.TaskID.Set {
			if err := checkTaskProject(ctx, repository.NewSQLiteProjectTaskRepo(tx), &merged); err != nil {
				return err
			}
		}

		changed, err = txSheets.Update(ctx, id, p)
		return err
	})
	return changed, err
}

func (s *timesheetService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.timesheets.Delete(ctx, id)
}

func checkTaskProject(ctx context.Context, tasks repository.ProjectTaskRepo, t *domain.Timesheet) error {
	if t.TaskID == nil {
		return nil
	}
	task, err := tasks.GetByID(ctx, *t.TaskID)
	if err != nil {
		return err
	}
	if task.ProjectID != t.ProjectID {
		return fmt.Errorf("%w: task %d belongs to project %d, not %d",
			domain.ErrInvalidInput, task.ID, task.ProjectID, t.ProjectID)
	}
	return nil
}
