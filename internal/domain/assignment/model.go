package assignment

import "time"

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// OpenEndedToken marks an assignment that has not ended yet.
const OpenEndedToken = "NULL"

// RawRow is one unvalidated tuple as yielded by a row source.
// Fields are expected in the order employee id, project id, date from, date to.
type RawRow struct {
	Line   int      `json:"line" yaml:"line"`
	Fields []string `json:"fields" yaml:"fields"`
}

// Field returns the i-th raw field and whether it was present.
func (r RawRow) Field(i int) (string, bool) {
	if i < 0 || i >= len(r.Fields) {
		return "", false
	}
	return r.Fields[i], true
}

// Assignment is one continuous interval an employee worked on a project.
// Both bounds are inclusive calendar dates at UTC midnight.
type Assignment struct {
	EmployeeID int64     `json:"employee_id"`
	ProjectID  int64     `json:"project_id"`
	DateFrom   time.Time `json:"date_from"`
	DateTo     time.Time `json:"date_to"`
}

// Rejection describes a raw row that failed validation.
type Rejection struct {
	Line   int      `json:"line" yaml:"line"`
	Fields []string `json:"fields" yaml:"fields"`
	Reason string   `json:"reason" yaml:"reason"`
}
