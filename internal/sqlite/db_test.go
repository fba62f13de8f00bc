package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a file-backed SQLite database with an empty assignments table
func NewTestDB(t *testing.T) (*DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "assignments.db")
	db, err := New(path)
	require.NoError(t, err, "failed to create test database")

	err = db.CreateAssignmentsTable(DefaultTable)
	require.NoError(t, err, "failed to create assignments table")

	t.Cleanup(func() {
		db.Close()
	})

	return db, path
}

func TestCreateAssignmentsTable(t *testing.T) {
	db, _ := NewTestDB(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", DefaultTable).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "table %s not found", DefaultTable)

	// Idempotent
	require.NoError(t, db.CreateAssignmentsTable(DefaultTable))
}

func TestCreateAssignmentsTable_RejectsBadName(t *testing.T) {
	db, _ := NewTestDB(t)
	require.ErrorIs(t, db.CreateAssignmentsTable(`x"; DROP TABLE assignments; --`), ErrInvalidTableName)
}

func TestOpenReadOnly(t *testing.T) {
	_, path := NewTestDB(t)

	ro, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	_, err = ro.Exec(`INSERT INTO assignments (employee_id, project_id, date_from, date_to) VALUES (1, 1, '2020-01-01', NULL)`)
	require.Error(t, err)
}

func TestValidateTableName(t *testing.T) {
	require.NoError(t, ValidateTableName("assignments"))
	require.NoError(t, ValidateTableName("_staff_2024"))
	require.ErrorIs(t, ValidateTableName(""), ErrInvalidTableName)
	require.ErrorIs(t, ValidateTableName("1st"), ErrInvalidTableName)
	require.ErrorIs(t, ValidateTableName("a b"), ErrInvalidTableName)
}
