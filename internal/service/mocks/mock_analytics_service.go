package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"textvault/internal/model"
)

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Dashboard(ctx context.Context, ownerID int64) (*model.AnalyticsDashboard, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnalyticsDashboard), args.Error(1)
}

func (m *MockAnalyticsService) Summary(ctx context.Context, ownerID int64) (*model.AnalyticsSummary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnalyticsSummary), args.Error(1)
}
