package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
)

// SQLiteLeadRepo implements LeadRepo using a SQLite database.
type SQLiteLeadRepo struct {
	db db.DBTX
}

// NewSQLiteLeadRepo creates a new SQLiteLeadRepo.
func NewSQLiteLeadRepo(conn db.DBTX) *SQLiteLeadRepo {
	return &SQLiteLeadRepo{db: conn}
}

const leadColumns = `id, client_name, project_name, budget_min, budget_max, deadline, notes, status, created_at`

func (r *SQLiteLeadRepo) Create(ctx context.Context, l *domain.Lead) error {
	query := `INSERT INTO leads (client_name, project_name, budget_min, budget_max, deadline, notes, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		l.ClientName,
		l.ProjectName,
		nullableInt64(l.BudgetMin),
		nullableInt64(l.BudgetMax),
		l.Deadline,
		l.Notes,
		string(l.Status),
		formatTime(l.CreatedAt),
	)
	if err != nil {
		return wrapWriteErr("inserting lead", err)
	}
	l.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading lead id: %w", err)
	}
	return nil
}

func (r *SQLiteLeadRepo) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = ?`, id)
	l, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lead %d: %w", id, ErrNotFound)
	}
	return l, err
}

// List returns leads newest first.
func (r *SQLiteLeadRepo) List(ctx context.Context) ([]*domain.Lead, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	leads := []*domain.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leads: %w", err)
	}
	return leads, nil
}

func (r *SQLiteLeadRepo) Update(ctx context.Context, id int64, p domain.LeadPatch) (int64, error) {
	var a assignments
	setField(&a, "client_name", p.ClientName, nil)
	setField(&a, "project_name", p.ProjectName, nil)
	setField(&a, "budget_min", p.BudgetMin, nil)
	setField(&a, "budget_max", p.BudgetMax, nil)
	setField(&a, "deadline", p.Deadline, nil)
	setField(&a, "notes", p.Notes, nil)
	setField(&a, "status", p.Status, func(s domain.LeadStatus) any { return string(s) })
	return a.exec(ctx, r.db, "leads", id)
}

// Delete removes the lead row only. Features must be removed first; quotes
// and project links are handled by the schema.
func (r *SQLiteLeadRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, "leads", id)
}

func scanLead(s scanner) (*domain.Lead, error) {
	var l domain.Lead
	var budgetMin, budgetMax sql.NullInt64
	var status, createdAt string
	err := s.Scan(&l.ID, &l.ClientName, &l.ProjectName, &budgetMin, &budgetMax,
		&l.Deadline, &l.Notes, &status, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning lead: %w", err)
	}
	l.BudgetMin = int64Ptr(budgetMin)
	l.BudgetMax = int64Ptr(budgetMax)
	l.Status = domain.LeadStatus(status)
	if l.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing lead created_at: %w", err)
	}
	return &l, nil
}
