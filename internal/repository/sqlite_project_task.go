package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
)

// SQLiteProjectTaskRepo implements ProjectTaskRepo using a SQLite database.
type SQLiteProjectTaskRepo struct {
	db db.DBTX
}

// NewSQLiteProjectTaskRepo creates a new SQLiteProjectTaskRepo.
func NewSQLiteProjectTaskRepo(conn db.DBTX) *SQLiteProjectTaskRepo {
	return &SQLiteProjectTaskRepo{db: conn}
}

const projectTaskColumns = `id, project_id, title, description, status, completed_at, created_at`

func (r *SQLiteProjectTaskRepo) Create(ctx context.Context, t *domain.ProjectTask) error {
	query := `INSERT INTO project_tasks (project_id, title, description, status, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		t.ProjectID,
		t.Title,
		t.Description,
		string(t.Status),
		nullableTimeToString(t.CompletedAt),
		formatTime(t.CreatedAt),
	)
	if err != nil {
		return wrapWriteErr("inserting project task", err)
	}
	t.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading project task id: %w", err)
	}
	return nil
}

func (r *SQLiteProjectTaskRepo) GetByID(ctx context.Context, id int64) (*domain.ProjectTask, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectTaskColumns+` FROM project_tasks WHERE id = ?`, id)
	t, err := scanProjectTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project task %d: %w", id, ErrNotFound)
	}
	return t, err
}

func (r *SQLiteProjectTaskRepo) ListByProject(ctx context.Context, projectID int64) ([]*domain.ProjectTask, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectTaskColumns+` FROM project_tasks WHERE project_id = ? ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing project tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.ProjectTask{}
	for rows.Next() {
		t, err := scanProjectTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project tasks: %w", err)
	}
	return tasks, nil
}

// Update writes the supplied fields. Moving to done stamps completed_at in
// the same statement; other statuses leave it as it was.
func (r *SQLiteProjectTaskRepo) Update(ctx context.Context, id int64, p domain.ProjectTaskPatch) (int64, error) {
	var a assignments
	setField(&a, "title", p.Title, nil)
	setField(&a, "description", p.Description, nil)
	setField(&a, "status", p.Status, func(s domain.TaskStatus) any { return string(s) })
	if p.MarksDone() {
		a.add("completed_at", formatTime(time.Now()))
	}
	return a.exec(ctx, r.db, "project_tasks", id)
}

// Delete removes the task; its timesheets cascade in the schema.
func (r *SQLiteProjectTaskRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, "project_tasks", id)
}

func scanProjectTask(s scanner) (*domain.ProjectTask, error) {
	var t domain.ProjectTask
	var status, createdAt string
	var completedAt sql.NullString
	err := s.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &status, &completedAt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project task: %w", err)
	}
	t.Status = domain.TaskStatus(status)
	if t.CompletedAt, err = parseNullableTime(completedAt); err != nil {
		return nil, fmt.Errorf("parsing project task completed_at: %w", err)
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing project task created_at: %w", err)
	}
	return &t, nil
}
