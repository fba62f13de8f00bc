package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &DB{db}, nil
}

// OpenReadOnly opens an existing database file without permission to modify it.
func OpenReadOnly(path string) (*DB, error) {
	return New(fmt.Sprintf("file:%s?mode=ro", path))
}

// CreateAssignmentsTable creates a table in the layout AssignmentSource reads.
// Used to prepare fixtures; the analysis itself never writes.
func (db *DB) CreateAssignmentsTable(table string) error {
	if err := ValidateTableName(table); err != nil {
		return err
	}
	ddl := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %q (
    employee_id INTEGER,
    project_id INTEGER,
    date_from TEXT,
    date_to TEXT
)`, table)

	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}
