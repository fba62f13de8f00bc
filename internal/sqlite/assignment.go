package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpggio/pairwork/internal/domain/assignment"
)

// DefaultTable is the table AssignmentSource reads when none is configured.
const DefaultTable = "assignments"

// AssignmentSource reads raw assignment rows from a table with the columns
// employee_id, project_id, date_from and date_to.
type AssignmentSource struct {
	db    *DB
	table string
}

// NewAssignmentSource creates a new AssignmentSource
func NewAssignmentSource(db *DB, table string) *AssignmentSource {
	if table == "" {
		table = DefaultTable
	}
	return &AssignmentSource{db: db, table: table}
}

// Rows returns every row as text in rowid order. NULL values become empty
// strings, which the validator treats as missing ids or an open-ended end date.
func (s *AssignmentSource) Rows(ctx context.Context) ([]assignment.RawRow, error) {
	if err := ValidateTableName(s.table); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			CAST(employee_id AS TEXT),
			CAST(project_id AS TEXT),
			CAST(date_from AS TEXT),
			CAST(date_to AS TEXT)
		FROM %q
		ORDER BY rowid
	`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var result []assignment.RawRow
	line := 0
	for rows.Next() {
		var employeeID, projectID, dateFrom, dateTo sql.NullString
		if err := rows.Scan(&employeeID, &projectID, &dateFrom, &dateTo); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		line++
		result = append(result, assignment.RawRow{
			Line: line,
			Fields: []string{
				employeeID.String,
				projectID.String,
				dateFrom.String,
				dateTo.String,
			},
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}

	return result, nil
}
