package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"textvault/internal/apperr"
	"textvault/internal/model"
	"textvault/internal/repository"
	repoMocks "textvault/internal/repository/mocks"
)

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("empty scope defaults to all", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewSearchService(mRepo)

		mRepo.On("Search", ctx, ownerID, "invoice", repository.ScopeAll).
			Return([]model.Document{{ID: 1}}, nil)

		res, err := svc.Search(ctx, ownerID, "invoice", "")

		assert.NoError(t, err)
		assert.Equal(t, repository.ScopeAll, res.Scope)
		assert.Equal(t, 1, res.Total)
		mRepo.AssertExpectations(t)
	})

	t.Run("invalid scope", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewSearchService(mRepo)

		res, err := svc.Search(ctx, ownerID, "invoice", "bogus")

		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Nil(t, res)
		mRepo.AssertNotCalled(t, "Search")
	})

	t.Run("whitespace-only query yields empty result without querying", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewSearchService(mRepo)

		res, err := svc.Search(ctx, ownerID, "   ", repository.ScopeContent)

		assert.NoError(t, err)
		assert.Empty(t, res.Results)
		assert.Equal(t, 0, res.Total)
		assert.Equal(t, repository.ScopeContent, res.Scope)
		mRepo.AssertNotCalled(t, "Search")
	})

	t.Run("trims query before matching", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewSearchService(mRepo)

		mRepo.On("Search", ctx, ownerID, "hóa đơn", repository.ScopeFilename).
			Return([]model.Document{}, nil)

		res, err := svc.Search(ctx, ownerID, "  hóa đơn  ", repository.ScopeFilename)

		assert.NoError(t, err)
		assert.Equal(t, "hóa đơn", res.Query)
		mRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewSearchService(mRepo)

		mRepo.On("Search", ctx, ownerID, "x", repository.ScopeAll).
			Return(nil, errors.New("db fail"))

		res, err := svc.Search(ctx, ownerID, "x", repository.ScopeAll)

		assert.Error(t, err)
		assert.Nil(t, res)
		mRepo.AssertExpectations(t)
	})
}
