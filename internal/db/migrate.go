package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate creates every table the application needs. Statements are ordered
// parents before children so foreign keys always point at existing tables,
// and each one is safe to re-run: the whole list executes on every start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE has no IF NOT EXISTS; re-runs hit duplicate columns.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Tables lists the application tables in creation order.
var Tables = []string{
	"users", "tasks",
	"leads", "features", "quotes", "quote_items",
	"projects", "project_tasks", "timesheets",
}

var migrations = []string{
	// Standalone user/task pair.
	`CREATE TABLE IF NOT EXISTS users (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		email      TEXT UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'pending',
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS leads (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		client_name  TEXT NOT NULL,
		project_name TEXT NOT NULL DEFAULT '',
		budget_min   INTEGER,
		budget_max   INTEGER,
		deadline     TEXT NOT NULL DEFAULT '',
		notes        TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'lead',
		created_at   TEXT NOT NULL
	)`,

	// Features have no storage cascade from leads: lead deletion removes them
	// explicitly first. The first shape used name/hours; feature_name,
	// hours_est and in_scope arrived later and stay NULL on older rows.
	`CREATE TABLE IF NOT EXISTS features (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		lead_id    INTEGER NOT NULL REFERENCES leads(id),
		name       TEXT,
		hours      REAL,
		complexity TEXT,
		created_at TEXT NOT NULL
	)`,
	`ALTER TABLE features ADD COLUMN feature_name TEXT`,
	`ALTER TABLE features ADD COLUMN hours_est REAL`,
	`ALTER TABLE features ADD COLUMN in_scope INTEGER`,
	`CREATE INDEX IF NOT EXISTS idx_features_lead ON features(lead_id)`,

	`CREATE TABLE IF NOT EXISTS quotes (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		lead_id     INTEGER NOT NULL REFERENCES leads(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		base_price  INTEGER NOT NULL DEFAULT 0,
		hourly_rate INTEGER NOT NULL DEFAULT 500,
		total_hours REAL NOT NULL DEFAULT 0,
		total_price INTEGER NOT NULL DEFAULT 0,
		status      TEXT NOT NULL DEFAULT 'draft',
		notes       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_lead ON quotes(lead_id)`,

	// feature_id is a weak reference without a foreign key: an item keeps the
	// id of a feature that has since been deleted.
	`CREATE TABLE IF NOT EXISTS quote_items (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		quote_id         INTEGER NOT NULL REFERENCES quotes(id) ON DELETE CASCADE,
		feature_id       INTEGER,
		item_name        TEXT NOT NULL,
		item_description TEXT NOT NULL DEFAULT '',
		hours            REAL NOT NULL DEFAULT 0,
		rate_per_hour    INTEGER NOT NULL DEFAULT 0,
		total_price      INTEGER NOT NULL DEFAULT 0,
		complexity       TEXT NOT NULL DEFAULT 'M',
		created_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_quote_items_quote ON quote_items(quote_id)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		lead_id     INTEGER REFERENCES leads(id) ON DELETE SET NULL,
		name        TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'active',
		base_price  INTEGER NOT NULL DEFAULT 0,
		hourly_rate INTEGER NOT NULL DEFAULT 500,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_lead ON projects(lead_id)`,

	`CREATE TABLE IF NOT EXISTS project_tasks (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id   INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'todo',
		completed_at TEXT,
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_project_tasks_project ON project_tasks(project_id)`,

	`CREATE TABLE IF NOT EXISTS timesheets (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id       INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		task_id          INTEGER REFERENCES project_tasks(id) ON DELETE CASCADE,
		description      TEXT NOT NULL DEFAULT '',
		start_time       TEXT NOT NULL,
		end_time         TEXT,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_timesheets_project ON timesheets(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_timesheets_task ON timesheets(task_id)`,
}
