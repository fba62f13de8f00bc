package overlap

import (
	"time"

	"github.com/rpggio/pairwork/internal/domain/assignment"
)

// ProjectGroup holds the assignments of one project in input order.
type ProjectGroup struct {
	ProjectID   int64
	Assignments []assignment.Assignment
}

// Pair is the best overlapping pair found within a project group.
type Pair struct {
	EmployeeOneID int64 `json:"employee_one_id"`
	EmployeeTwoID int64 `json:"employee_two_id"`
	OverlapDays   int   `json:"overlap_days"`
}

// ProjectResult is the longest-overlap pair reported for a project.
type ProjectResult struct {
	ProjectID          int64 `json:"project_id" yaml:"project_id"`
	EmployeeOneID      int64 `json:"employee_one_id" yaml:"employee_one_id"`
	EmployeeTwoID      int64 `json:"employee_two_id" yaml:"employee_two_id"`
	DaysWorkedTogether int   `json:"days_worked_together" yaml:"days_worked_together"`
}

// Report is the outcome of one analysis run.
type Report struct {
	RunID    string                 `json:"run_id" yaml:"run_id"`
	AsOf     time.Time              `json:"as_of" yaml:"as_of"`
	Accepted int                    `json:"accepted" yaml:"accepted"`
	Results  []ProjectResult        `json:"results" yaml:"results"`
	Rejected []assignment.Rejection `json:"rejected,omitempty" yaml:"rejected,omitempty"`
}
