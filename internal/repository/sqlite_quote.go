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

// SQLiteQuoteRepo implements QuoteRepo using a SQLite database.
type SQLiteQuoteRepo struct {
	db db.DBTX
}

// NewSQLiteQuoteRepo creates a new SQLiteQuoteRepo.
func NewSQLiteQuoteRepo(conn db.DBTX) *SQLiteQuoteRepo {
	return &SQLiteQuoteRepo{db: conn}
}

const quoteColumns = `id, lead_id, title, base_price, hourly_rate, total_hours, total_price, status, notes, created_at, updated_at`

func (r *SQLiteQuoteRepo) Create(ctx context.Context, q *domain.Quote) error {
	query := `INSERT INTO quotes (lead_id, title, base_price, hourly_rate, total_hours, total_price, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		q.LeadID,
		q.Title,
		q.BasePrice,
		q.HourlyRate,
		q.TotalHours,
		q.TotalPrice,
		string(q.Status),
		q.Notes,
		formatTime(q.CreatedAt),
		formatTime(q.UpdatedAt),
	)
	if err != nil {
		return wrapWriteErr("inserting quote", err)
	}
	q.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading quote id: %w", err)
	}
	return nil
}

func (r *SQLiteQuoteRepo) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = ?`, id)
	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("quote %d: %w", id, ErrNotFound)
	}
	return q, err
}

// ListByLead returns the lead's quotes newest first.
func (r *SQLiteQuoteRepo) ListByLead(ctx context.Context, leadID int64) ([]*domain.Quote, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+quoteColumns+` FROM quotes WHERE lead_id = ? ORDER BY created_at DESC, id DESC`, leadID)
	if err != nil {
		return nil, fmt.Errorf("listing quotes by lead: %w", err)
	}
	defer rows.Close()

	quotes := []*domain.Quote{}
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotes: %w", err)
	}
	return quotes, nil
}

// Update writes the supplied fields and bumps updated_at. An empty patch
// touches nothing, updated_at included.
func (r *SQLiteQuoteRepo) Update(ctx context.Context, id int64, p domain.QuotePatch) (int64, error) {
	var a assignments
	setField(&a, "title", p.Title, nil)
	setField(&a, "base_price", p.BasePrice, nil)
	setField(&a, "hourly_rate", p.HourlyRate, nil)
	setField(&a, "total_hours", p.TotalHours, nil)
	setField(&a, "total_price", p.TotalPrice, nil)
	setField(&a, "status", p.Status, func(s domain.QuoteStatus) any { return string(s) })
	setField(&a, "notes", p.Notes, nil)
	if a.empty() {
		return 0, nil
	}
	a.add("updated_at", formatTime(time.Now()))
	return a.exec(ctx, r.db, "quotes", id)
}

// Delete removes the quote; its items go with it through the schema cascade.
func (r *SQLiteQuoteRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, "quotes", id)
}

func scanQuote(s scanner) (*domain.Quote, error) {
	var q domain.Quote
	var status, createdAt, updatedAt string
	err := s.Scan(&q.ID, &q.LeadID, &q.Title, &q.BasePrice, &q.HourlyRate, &q.TotalHours,
		&q.TotalPrice, &status, &q.Notes, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning quote: %w", err)
	}
	q.Status = domain.QuoteStatus(status)
	if q.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing quote created_at: %w", err)
	}
	if q.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing quote updated_at: %w", err)
	}
	return &q, nil
}
