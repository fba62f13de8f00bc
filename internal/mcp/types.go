package mcp

import (
	"github.com/rpggio/pairwork/internal/domain/assignment"
	"github.com/rpggio/pairwork/internal/domain/overlap"
)

// FindLongestPairsParams is the input of the find_longest_pairs tool.
type FindLongestPairsParams struct {
	CSV       string `json:"csv,omitempty" jsonschema:"Assignment rows as delimited text: employee id, project id, date from, date to (YYYY-MM-DD, NULL or empty for ongoing)"`
	Path      string `json:"path,omitempty" jsonschema:"Path of a delimited text file on the server host (stdio transport only)"`
	Separator string `json:"separator,omitempty" jsonschema:"Single-character field separator, default comma"`
}

// FindLongestPairsResult is the structured output of the find_longest_pairs tool.
type FindLongestPairsResult struct {
	RunID    string                  `json:"run_id"`
	AsOf     string                  `json:"as_of"`
	Accepted int                     `json:"accepted"`
	Results  []overlap.ProjectResult `json:"results"`
	Rejected []assignment.Rejection  `json:"rejected,omitempty"`
}

func toResult(report *overlap.Report) FindLongestPairsResult {
	results := report.Results
	if results == nil {
		results = []overlap.ProjectResult{}
	}
	return FindLongestPairsResult{
		RunID:    report.RunID,
		AsOf:     report.AsOf.Format(assignment.DateLayout),
		Accepted: report.Accepted,
		Results:  results,
		Rejected: report.Rejected,
	}
}
