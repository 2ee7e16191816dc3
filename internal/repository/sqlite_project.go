package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

const projectViewQuery = `SELECT p.id, p.lead_id, p.name, p.status, p.base_price, p.hourly_rate, p.created_at,
		l.client_name, l.project_name
	FROM projects p
	LEFT JOIN leads l ON l.id = p.lead_id`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (lead_id, name, status, base_price, hourly_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		nullableInt64(p.LeadID),
		p.Name,
		string(p.Status),
		p.BasePrice,
		p.HourlyRate,
		formatTime(p.CreatedAt),
	)
	if err != nil {
		return wrapWriteErr("inserting project", err)
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading project id: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id int64) (*domain.ProjectView, error) {
	row := r.db.QueryRowContext(ctx, projectViewQuery+` WHERE p.id = ?`, id)
	p, err := scanProjectView(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	return p, err
}

// List returns projects newest first.
func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.ProjectView, error) {
	rows, err := r.db.QueryContext(ctx, projectViewQuery+` ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	projects := []*domain.ProjectView{}
	for rows.Next() {
		p, err := scanProjectView(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, id int64, p domain.ProjectPatch) (int64, error) {
	var a assignments
	setField(&a, "lead_id", p.LeadID, nil)
	setField(&a, "name", p.Name, nil)
	setField(&a, "status", p.Status, func(s domain.ProjectStatus) any { return string(s) })
	setField(&a, "base_price", p.BasePrice, nil)
	setField(&a, "hourly_rate", p.HourlyRate, nil)
	return a.exec(ctx, r.db, "projects", id)
}

// Delete removes the project; tasks and timesheets cascade in the schema.
func (r *SQLiteProjectRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, "projects", id)
}

func scanProjectView(s scanner) (*domain.ProjectView, error) {
	var v domain.ProjectView
	var leadID sql.NullInt64
	var status, createdAt string
	var clientName, leadProjectName sql.NullString
	err := s.Scan(&v.ID, &leadID, &v.Name, &status, &v.BasePrice, &v.HourlyRate, &createdAt,
		&clientName, &leadProjectName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	v.LeadID = int64Ptr(leadID)
	v.Status = domain.ProjectStatus(status)
	v.ClientName = stringPtr(clientName)
	v.LeadProjectName = stringPtr(leadProjectName)
	if v.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing project created_at: %w", err)
	}
	return &v, nil
}
