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

// SQLiteTimesheetRepo implements TimesheetRepo using a SQLite database.
type SQLiteTimesheetRepo struct {
	db db.DBTX
}

// NewSQLiteTimesheetRepo creates a new SQLiteTimesheetRepo.
func NewSQLiteTimesheetRepo(conn db.DBTX) *SQLiteTimesheetRepo {
	return &SQLiteTimesheetRepo{db: conn}
}

const timesheetViewQuery = `SELECT ts.id, ts.project_id, ts.task_id, ts.description, ts.start_time, ts.end_time,
		ts.duration_minutes, ts.created_at, t.title
	FROM timesheets ts
	LEFT JOIN project_tasks t ON t.id = ts.task_id`

func (r *SQLiteTimesheetRepo) Create(ctx context.Context, t *domain.Timesheet) error {
	query := `INSERT INTO timesheets (project_id, task_id, description, start_time, end_time, duration_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		t.ProjectID,
		nullableInt64(t.TaskID),
		t.Description,
		formatTime(t.StartTime),
		nullableTimeToString(t.EndTime),
		t.DurationMinutes,
		formatTime(t.CreatedAt),
	)
	if err != nil {
		return wrapWriteErr("inserting timesheet", err)
	}
	t.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading timesheet id: %w", err)
	}
	return nil
}

func (r *SQLiteTimesheetRepo) GetByID(ctx context.Context, id int64) (*domain.TimesheetView, error) {
	row := r.db.QueryRowContext(ctx, timesheetViewQuery+` WHERE ts.id = ?`, id)
	v, err := scanTimesheetView(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("timesheet %d: %w", id, ErrNotFound)
	}
	return v, err
}

// ListByProject returns the project's timesheets, latest start first.
func (r *SQLiteTimesheetRepo) ListByProject(ctx context.Context, projectID int64) ([]*domain.TimesheetView, error) {
	rows, err := r.db.QueryContext(ctx,
		timesheetViewQuery+` WHERE ts.project_id = ? ORDER BY ts.start_time DESC, ts.id DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing timesheets: %w", err)
	}
	defer rows.Close()

	sheets := []*domain.TimesheetView{}
	for rows.Next() {
		v, err := scanTimesheetView(rows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timesheets: %w", err)
	}
	return sheets, nil
}

func (r *SQLiteTimesheetRepo) Update(ctx context.Context, id int64, p domain.TimesheetPatch) (int64, error) {
	toText := func(t time.Time) any { return formatTime(t) }
	var a assignments
	setField(&a, "task_id", p.TaskID, nil)
	setField(&a, "description", p.Description, nil)
	setField(&a, "start_time", p.StartTime, toText)
	setField(&a, "end_time", p.EndTime, toText)
	setField(&a, "duration_minutes", p.DurationMinutes, nil)
	return a.exec(ctx, r.db, "timesheets", id)
}

func (r *SQLiteTimesheetRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, "timesheets", id)
}

// TotalMinutes sums the logged minutes of a project.
func (r *SQLiteTimesheetRepo) TotalMinutes(ctx context.Context, projectID int64) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(duration_minutes), 0) FROM timesheets WHERE project_id = ?`, projectID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing timesheet minutes: %w", err)
	}
	return total, nil
}

func scanTimesheetView(s scanner) (*domain.TimesheetView, error) {
	var v domain.TimesheetView
	var taskID sql.NullInt64
	var startTime, createdAt string
	var endTime, taskTitle sql.NullString
	err := s.Scan(&v.ID, &v.ProjectID, &taskID, &v.Description, &startTime, &endTime,
		&v.DurationMinutes, &createdAt, &taskTitle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning timesheet: %w", err)
	}
	v.TaskID = int64Ptr(taskID)
	v.TaskTitle = stringPtr(taskTitle)
	if v.StartTime, err = parseTime(startTime); err != nil {
		return nil, fmt.Errorf("parsing timesheet start_time: %w", err)
	}
	if v.EndTime, err = parseNullableTime(endTime); err != nil {
		return nil, fmt.Errorf("parsing timesheet end_time: %w", err)
	}
	if v.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing timesheet created_at: %w", err)
	}
	return &v, nil
}
