package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo for the free-standing to-do list.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, status, created_at) VALUES (?, ?, ?, ?)`,
		t.Title, t.Description, t.Status, formatTime(t.CreatedAt))
	if err != nil {
		return wrapWriteErr("inserting task", err)
	}
	t.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading task id: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, description, status, created_at FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		var t domain.Task
		var createdAt string
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		if t.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing task created_at: %w", err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return 0, wrapWriteErr("updating task status", err)
	}
	return rowsAffected(res)
}
