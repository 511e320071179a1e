package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"textvault/internal/repository"
	"textvault/internal/service"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, ownerID int64, query string, scope repository.SearchScope) (*service.SearchResult, error) {
	args := m.Called(ctx, ownerID, query, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchResult), args.Error(1)
}
