package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"textvault/internal/model"
)

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Overview(ctx context.Context, ownerID int64) (*model.AnalyticsOverview, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnalyticsOverview), args.Error(1)
}

func (m *MockAnalyticsRepository) FolderDistribution(ctx context.Context, ownerID int64) ([]model.FolderCount, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FolderCount), args.Error(1)
}

func (m *MockAnalyticsRepository) FileFormats(ctx context.Context, ownerID int64) (map[string]int, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockAnalyticsRepository) Recent(ctx context.Context, ownerID int64, limit int) ([]model.Document, error) {
	args := m.Called(ctx, ownerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}
