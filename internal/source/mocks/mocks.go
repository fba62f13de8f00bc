package mocks

import (
	"context"

	"github.com/rpggio/pairwork/internal/domain/assignment"
	"github.com/stretchr/testify/mock"
)

// RowSource is a mock for overlap.RowSource.
type RowSource struct {
	mock.Mock
}

func (m *RowSource) Rows(ctx context.Context) ([]assignment.RawRow, error) {
	args := m.Called(ctx)
	if rows, ok := args.Get(0).([]assignment.RawRow); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}
