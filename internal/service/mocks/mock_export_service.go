package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"textvault/internal/export"
)

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Download(ctx context.Context, ownerID, id int64, format string) (*export.Result, error) {
	args := m.Called(ctx, ownerID, id, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*export.Result), args.Error(1)
}
