package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
)

// SQLiteFeatureRepo implements FeatureRepo using a SQLite database.
//
// Writes always fill the current columns (feature_name, hours_est, in_scope).
// Reads go through domain.FeatureRecord so rows from the older name/hours
// layout come back normalized.
type SQLiteFeatureRepo struct {
	db db.DBTX
}

// NewSQLiteFeatureRepo creates a new SQLiteFeatureRepo.
func NewSQLiteFeatureRepo(conn db.DBTX) *SQLiteFeatureRepo {
	return &SQLiteFeatureRepo{db: conn}
}

const featureColumns = `id, lead_id, feature_name, name, CAST(hours_est AS TEXT), CAST(hours AS TEXT),
	complexity, CAST(in_scope AS TEXT), created_at`

func (r *SQLiteFeatureRepo) Create(ctx context.Context, f *domain.Feature) error {
	query := `INSERT INTO features (lead_id, feature_name, hours_est, complexity, in_scope, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		f.LeadID,
		f.Name,
		f.HoursEst,
		string(f.Complexity),
		boolToInt(f.InScope),
		formatTime(f.CreatedAt),
	)
	if err != nil {
		return wrapWriteErr("inserting feature", err)
	}
	f.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading feature id: %w", err)
	}
	return nil
}

func (r *SQLiteFeatureRepo) GetByID(ctx context.Context, id int64) (*domain.Feature, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+featureColumns+` FROM features WHERE id = ?`, id)
	rec, err := scanFeatureRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("feature %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	f := rec.Normalize()
	return &f, nil
}

func (r *SQLiteFeatureRepo) ListByLead(ctx context.Context, leadID int64) ([]domain.Feature, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+featureColumns+` FROM features WHERE lead_id = ? ORDER BY id`, leadID)
	if err != nil {
		return nil, fmt.Errorf("listing features by lead: %w", err)
	}
	defer rows.Close()

	features := []domain.Feature{}
	for rows.Next() {
		rec, err := scanFeatureRecord(rows)
		if err != nil {
			return nil, err
		}
		features = append(features, rec.Normalize())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating features: %w", err)
	}
	return features, nil
}

func (r *SQLiteFeatureRepo) Update(ctx context.Context, id int64, p domain.FeaturePatch) (int64, error) {
	var a assignments
	setField(&a, "feature_name", p.Name, nil)
	setField(&a, "hours_est", p.HoursEst, nil)
	setField(&a, "complexity", p.Complexity, func(c domain.Complexity) any { return string(c) })
	setField(&a, "in_scope", p.InScope, func(b bool) any { return boolToInt(b) })
	return a.exec(ctx, r.db, "features", id)
}

func (r *SQLiteFeatureRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, "features", id)
}

func (r *SQLiteFeatureRepo) DeleteByLead(ctx context.Context, leadID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM features WHERE lead_id = ?`, leadID)
	if err != nil {
		return 0, wrapWriteErr("deleting features by lead", err)
	}
	return rowsAffected(res)
}

func scanFeatureRecord(s scanner) (domain.FeatureRecord, error) {
	var rec domain.FeatureRecord
	var featureName, name, hoursEst, hours, complexity, inScope sql.NullString
	var createdAt string
	err := s.Scan(&rec.ID, &rec.LeadID, &featureName, &name, &hoursEst, &hours,
		&complexity, &inScope, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("scanning feature: %w", err)
	}
	rec.FeatureName = stringPtr(featureName)
	rec.Name = stringPtr(name)
	rec.HoursEst = stringPtr(hoursEst)
	rec.Hours = stringPtr(hours)
	rec.Complexity = stringPtr(complexity)
	rec.InScope = stringPtr(inScope)
	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return rec, fmt.Errorf("parsing feature created_at: %w", err)
	}
	return rec, nil
}
