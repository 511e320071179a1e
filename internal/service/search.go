package service

import (
	"context"
	"fmt"
	"strings"

	"textvault/internal/apperr"
	"textvault/internal/model"
	"textvault/internal/repository"
)

// SearchResult is the service-level DTO for a search response.
type SearchResult struct {
	Results []model.Document       `json:"results"`
	Total   int                    `json:"total"`
	Query   string                 `json:"query"`
	Scope   repository.SearchScope `json:"search_type"`
}

// SearchService matches a query against the owner's documents by
// case-insensitive substring containment.
type SearchService interface {
	// Search returns matches newest first. An empty or whitespace-only query
	// yields an empty result set, not an error.
	Search(ctx context.Context, ownerID int64, query string, scope repository.SearchScope) (*SearchResult, error)
}

type searchService struct {
	repo repository.DocumentRepository
}

// NewSearchService constructs a new SearchService.
func NewSearchService(repo repository.DocumentRepository) SearchService {
	return &searchService{repo: repo}
}

func (s *searchService) Search(ctx context.Context, ownerID int64, query string, scope repository.SearchScope) (*SearchResult, error) {
	if scope == "" {
		scope = repository.ScopeAll
	}
	if !scope.Valid() {
		return nil, fmt.Errorf("search scope %q: %w", scope, apperr.ErrInvalidInput)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return &SearchResult{Results: []model.Document{}, Total: 0, Query: query, Scope: scope}, nil
	}

	docs, err := s.repo.Search(ctx, ownerID, query, scope)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Results: docs, Total: len(docs), Query: query, Scope: scope}, nil
}
