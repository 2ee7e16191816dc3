package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/domain"
)

// legacyTimeLayout is SQLite's CURRENT_TIMESTAMP format, found on rows
// written by older builds.
const legacyTimeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	if t, legacyErr := time.ParseInLocation(legacyTimeLayout, s, time.UTC); legacyErr == nil {
		return t, nil
	}
	return time.Time{}, err
}

// parseNullableTime returns nil for NULL or empty values.
func parseNullableTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
func nullableTimeToString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func nullableInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func float64Ptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return formatTime(time.Now())
}

// assignments accumulates the SET list of a partial UPDATE.
type assignments struct {
	cols []string
	args []any
}

func (a *assignments) add(col string, v any) {
	a.cols = append(a.cols, col+" = ?")
	a.args = append(a.args, v)
}

func (a *assignments) empty() bool { return len(a.cols) == 0 }

// setField adds col when the field was supplied; an explicit null writes NULL.
func setField[T any](a *assignments, col string, o domain.Optional[T], conv func(T) any) {
	if !o.Set {
		return
	}
	if o.Null {
		a.add(col, nil)
		return
	}
	if conv == nil {
		a.add(col, o.Value)
		return
	}
	a.add(col, conv(o.Value))
}

// exec runs the UPDATE against the row with the given id and reports how many
// rows changed. With nothing to assign it issues no statement.
func (a *assignments) exec(ctx context.Context, conn db.DBTX, table string, id int64) (int64, error) {
	if a.empty() {
		return 0, nil
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(a.cols, ", "))
	res, err := conn.ExecContext(ctx, query, append(a.args, id)...)
	if err != nil {
		return 0, wrapWriteErr("updating "+table, err)
	}
	return rowsAffected(res)
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows affected: %w", err)
	}
	return n, nil
}

func deleteByID(ctx context.Context, conn db.DBTX, table string, id int64) (int64, error) {
	res, err := conn.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return 0, wrapWriteErr("deleting from "+table, err)
	}
	return rowsAffected(res)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
