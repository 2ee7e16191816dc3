package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
)

// SQLiteQuoteItemRepo implements QuoteItemRepo using a SQLite database.
type SQLiteQuoteItemRepo struct {
	db db.DBTX
}

// NewSQLiteQuoteItemRepo creates a new SQLiteQuoteItemRepo.
func NewSQLiteQuoteItemRepo(conn db.DBTX) *SQLiteQuoteItemRepo {
	return &SQLiteQuoteItemRepo{db: conn}
}

func (r *SQLiteQuoteItemRepo) Create(ctx context.Context, i *domain.QuoteItem) error {
	query := `INSERT INTO quote_items (quote_id, feature_id, item_name, item_description, hours, rate_per_hour, total_price, complexity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		i.QuoteID,
		nullableInt64(i.FeatureID),
		i.ItemName,
		i.ItemDescription,
		i.Hours,
		i.RatePerHour,
		i.TotalPrice,
		string(i.Complexity),
		formatTime(i.CreatedAt),
	)
	if err != nil {
		return wrapWriteErr("inserting quote item", err)
	}
	i.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading quote item id: %w", err)
	}
	return nil
}

// ListByQuote returns the quote's items in insertion order, each carrying the
// current name and hours of its feature. Items whose feature is gone keep
// their snapshot and report NULL for both.
func (r *SQLiteQuoteItemRepo) ListByQuote(ctx context.Context, quoteID int64) ([]*domain.QuoteItemView, error) {
	query := `SELECT qi.id, qi.quote_id, qi.feature_id, qi.item_name, qi.item_description, qi.hours,
			qi.rate_per_hour, qi.total_price, qi.complexity, qi.created_at,
			COALESCE(f.feature_name, f.name), CAST(COALESCE(f.hours_est, f.hours) AS REAL)
		FROM quote_items qi
		LEFT JOIN features f ON f.id = qi.feature_id
		WHERE qi.quote_id = ?
		ORDER BY qi.id`
	rows, err := r.db.QueryContext(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("listing quote items: %w", err)
	}
	defer rows.Close()

	items := []*domain.QuoteItemView{}
	for rows.Next() {
		var v domain.QuoteItemView
		var featureID sql.NullInt64
		var complexity, createdAt string
		var featureName sql.NullString
		var featureHours sql.NullFloat64
		if err := rows.Scan(&v.ID, &v.QuoteID, &featureID, &v.ItemName, &v.ItemDescription, &v.Hours,
			&v.RatePerHour, &v.TotalPrice, &complexity, &createdAt, &featureName, &featureHours); err != nil {
			return nil, fmt.Errorf("scanning quote item: %w", err)
		}
		v.FeatureID = int64Ptr(featureID)
		v.Complexity = domain.ParseComplexity(complexity)
		v.FeatureName = stringPtr(featureName)
		v.FeatureHours = float64Ptr(featureHours)
		if v.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing quote item created_at: %w", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quote items: %w", err)
	}
	return items, nil
}

func (r *SQLiteQuoteItemRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, "quote_items", id)
}
