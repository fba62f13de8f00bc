package overlap_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/rpggio/pairwork/internal/domain/assignment"
	"github.com/rpggio/pairwork/internal/domain/overlap"
	"github.com/rpggio/pairwork/internal/source/mocks"
	"github.com/stretchr/testify/require"
)

func clockAt(y int, m time.Month, d int) assignment.Clock {
	return func() time.Time { return time.Date(y, m, d, 9, 0, 0, 0, time.UTC) }
}

func TestService_Analyze(t *testing.T) {
	ctx := context.Background()

	src := &mocks.RowSource{}
	src.On("Rows", ctx).Return([]assignment.RawRow{
		{Line: 1, Fields: []string{"1", "100", "2020-01-01", "2020-06-01"}},
		{Line: 2, Fields: []string{"abc", "100", "2020-01-01", "2020-02-01"}},
		{Line: 3, Fields: []string{"2", "100", "2020-03-01", "2020-09-01"}},
		{Line: 4, Fields: []string{"3", "200", "2020-01-01", "2020-01-10"}},
	}, nil)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	svc := overlap.NewService(assignment.NewValidator(clockAt(2024, time.January, 2)), logger)
	report, err := svc.Analyze(ctx, src)
	require.NoError(t, err)
	src.AssertExpectations(t)

	require.NotEmpty(t, report.RunID)
	require.Equal(t, 3, report.Accepted)
	require.Equal(t, []overlap.ProjectResult{
		{ProjectID: 100, EmployeeOneID: 1, EmployeeTwoID: 2, DaysWorkedTogether: 92},
	}, report.Results)

	require.Len(t, report.Rejected, 1)
	require.Equal(t, 2, report.Rejected[0].Line)
	require.Equal(t, []string{"abc", "100", "2020-01-01", "2020-02-01"}, report.Rejected[0].Fields)

	require.Contains(t, logs.String(), "rejected assignment row")
	require.Contains(t, logs.String(), "abc")
}

func TestService_Analyze_OpenEndedUsesClock(t *testing.T) {
	ctx := context.Background()

	src := &mocks.RowSource{}
	src.On("Rows", ctx).Return([]assignment.RawRow{
		{Line: 1, Fields: []string{"1", "9", "2023-12-01", "NULL"}},
		{Line: 2, Fields: []string{"2", "9", "2023-12-22", ""}},
	}, nil)

	svc := overlap.NewService(assignment.NewValidator(clockAt(2024, time.January, 1)), nil)
	report, err := svc.Analyze(ctx, src)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), report.AsOf)
	require.Equal(t, []overlap.ProjectResult{
		{ProjectID: 9, EmployeeOneID: 1, EmployeeTwoID: 2, DaysWorkedTogether: 10},
	}, report.Results)
}

func TestService_Analyze_SourceError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")

	src := &mocks.RowSource{}
	src.On("Rows", ctx).Return(nil, boom)

	svc := overlap.NewService(nil, nil)
	_, err := svc.Analyze(ctx, src)
	require.ErrorIs(t, err, boom)
}

func TestService_Analyze_NilSource(t *testing.T) {
	svc := overlap.NewService(nil, nil)
	_, err := svc.Analyze(context.Background(), nil)
	require.ErrorIs(t, err, overlap.ErrNoSource)
}
