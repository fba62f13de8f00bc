package overlap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rpggio/pairwork/internal/domain/assignment"
)

// Service runs validation and overlap computation over a row source.
type Service struct {
	validator *assignment.Validator
	logger    *slog.Logger
}

// NewService creates a new analysis service.
func NewService(validator *assignment.Validator, logger *slog.Logger) *Service {
	if validator == nil {
		validator = assignment.NewValidator(nil)
	}
	return &Service{validator: validator, logger: logger}
}

// Analyze reads every row from src and reports the longest-overlap pair per project.
// Malformed rows are logged and listed in the report; only source failures return an error.
func (s *Service) Analyze(ctx context.Context, src RowSource) (*Report, error) {
	if src == nil {
		return nil, ErrNoSource
	}

	rows, err := src.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	report := &Report{
		RunID: uuid.NewString(),
		AsOf:  s.validator.Today(),
	}

	records := make([]assignment.Assignment, 0, len(rows))
	for _, row := range rows {
		rec, err := s.validator.Validate(row)
		if err != nil {
			var rowErr *assignment.RowError
			if !errors.As(err, &rowErr) {
				return nil, fmt.Errorf("validating line %d: %w", row.Line, err)
			}
			s.logRejected(ctx, report.RunID, rowErr)
			report.Rejected = append(report.Rejected, rowErr.Rejection())
			continue
		}
		records = append(records, rec)
	}

	report.Accepted = len(records)
	report.Results = Compute(records)

	if s.logger != nil {
		s.logger.InfoContext(ctx, "analysis complete",
			"run_id", report.RunID,
			"rows", len(rows),
			"accepted", report.Accepted,
			"rejected", len(report.Rejected),
			"results", len(report.Results),
		)
	}

	return report, nil
}

func (s *Service) logRejected(ctx context.Context, runID string, rowErr *assignment.RowError) {
	if s.logger == nil {
		return
	}
	s.logger.WarnContext(ctx, "rejected assignment row",
		"run_id", runID,
		"line", rowErr.Row.Line,
		"fields", rowErr.Row.Fields,
		"field", rowErr.Field,
		"error", rowErr.Err,
	)
}
