package service

import (
	"context"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/estimate"
	"github.com/alexanderramin/bidbook/internal/repository"
)

type projectService struct {
	projects   repository.ProjectRepo
	tasks      repository.ProjectTaskRepo
	timesheets repository.TimesheetRepo
	uow        db.UnitOfWork
}

func NewProjectService(
	projects repository.ProjectRepo,
	tasks repository.ProjectTaskRepo,
	timesheets repository.TimesheetRepo,
	uow db.UnitOfWork,
) ProjectService {
	return &projectService{projects: projects, tasks: tasks, timesheets: timesheets, uow: uow}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	p.CreatedAt = now()
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	if p.HourlyRate == 0 {
		p.HourlyRate = domain.DefaultHourlyRate
	}
	status, err := domain.ParseProjectStatus(string(p.Status))
	if err != nil {
		return err
	}
	p.Status = status
	if err := p.Validate(); err != nil {
		return err
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*domain.ProjectView, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.ProjectView, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Update(ctx context.Context, id int64, p domain.ProjectPatch) (int64, error) {
	if p.IsEmpty() {
		return 0, nil
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.Status.Set {
		status, err := domain.ParseProjectStatus(string(p.Status.Value))
		if err != nil {
			return 0, err
		}
		p.Status.Value = status
	}

	var changed int64
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		if p.Status.Set {
			current, err := txProjects.GetByID(ctx, id)
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
		changed, err = txProjects.Update(ctx, id, p)
		return err
	})
	return changed, err
}

// Delete removes the project; its tasks and timesheets go with it.
func (s *projectService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.projects.Delete(ctx, id)
}

// Summary counts tasks per status and bills logged minutes at the project rate.
func (s *projectService) Summary(ctx context.Context, id int64) (*domain.ProjectSummary, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	minutes, err := s.timesheets.TotalMinutes(ctx, id)
	if err != nil {
		return nil, err
	}

	sum := &domain.ProjectSummary{
		ProjectID: id,
		TaskCounts: map[domain.TaskStatus]int{
			domain.TaskTodo:  0,
			domain.TaskDoing: 0,
			domain.TaskDone:  0,
		},
		TotalTasks:    len(tasks),
		LoggedMinutes: minutes,
		HourlyRate:    p.HourlyRate,
	}
	for _, t := range tasks {
		sum.TaskCounts[t.Status]++
	}
	sum.BillableAmount = estimate.Round(float64(minutes) * float64(p.HourlyRate) / 60)
	return sum, nil
}
