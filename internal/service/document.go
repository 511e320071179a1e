package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"textvault/internal/apperr"
	"textvault/internal/model"
	"textvault/internal/repository"
)

// UpdateDocumentInput carries a partial document update. Nil fields are left
// unchanged.
type UpdateDocumentInput struct {
	Filename *string
	Text     *string
}

// DocumentListResult is the service-level DTO for document listings.
type DocumentListResult struct {
	Items []model.Document `json:"results"`
	Total int              `json:"total"`
}

// DocumentService defines the use cases for managing documents and their
// folder memberships.
type DocumentService interface {
	// Create stores a new document with no folder associations. The format
	// tag is derived from the filename extension.
	Create(ctx context.Context, ownerID int64, filename, text string) (*model.Document, error)

	// Get returns a single owned document.
	Get(ctx context.Context, ownerID, id int64) (*model.Document, error)

	// Update applies a partial update to filename and/or text.
	Update(ctx context.Context, ownerID, id int64, in UpdateDocumentInput) (*model.Document, error)

	// Delete removes the document and cascades over its folder associations.
	Delete(ctx context.Context, ownerID, id int64) error

	// SetFolders atomically replaces the document's entire membership set.
	SetFolders(ctx context.Context, ownerID, id int64, folderIDs []int64) (*model.Document, error)

	// MoveToFolder is SetFolders with a singleton set, or the empty set when
	// folderID is nil.
	MoveToFolder(ctx context.Context, ownerID, id int64, folderID *int64) (*model.Document, error)

	// List returns the owner's documents, newest first, optionally filtered
	// by folder membership.
	List(ctx context.Context, ownerID int64, folderID *int64) (*DocumentListResult, error)
}

type documentService struct {
	repo repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(repo repository.DocumentRepository) DocumentService {
	return &documentService{repo: repo}
}

// FormatTag derives the lower-cased file-format tag from a filename
// extension; files without an extension are tagged "unknown".
func FormatTag(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}

func (s *documentService) Create(ctx context.Context, ownerID int64, filename, text string) (*model.Document, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, fmt.Errorf("filename must not be empty: %w", apperr.ErrInvalidInput)
	}
	return s.repo.Create(ctx, &model.Document{
		OwnerID:  ownerID,
		Filename: filename,
		Text:     text,
		Format:   FormatTag(filename),
	})
}

func (s *documentService) Get(ctx context.Context, ownerID, id int64) (*model.Document, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

func (s *documentService) Update(ctx context.Context, ownerID, id int64, in UpdateDocumentInput) (*model.Document, error) {
	doc, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if in.Filename != nil {
		filename := strings.TrimSpace(*in.Filename)
		if filename == "" {
			return nil, fmt.Errorf("filename must not be empty: %w", apperr.ErrInvalidInput)
		}
		doc.Filename = filename
		doc.Format = FormatTag(filename)
	}
	if in.Text != nil {
		doc.Text = *in.Text
	}

	return s.repo.Update(ctx, doc)
}

func (s *documentService) Delete(ctx context.Context, ownerID, id int64) error {
	return s.repo.Delete(ctx, ownerID, id)
}

func (s *documentService) SetFolders(ctx context.Context, ownerID, id int64, folderIDs []int64) (*model.Document, error) {
	normalized := normalizeIDSet(folderIDs)
	for _, fid := range normalized {
		if fid <= 0 {
			return nil, fmt.Errorf("folder id %d: %w", fid, apperr.ErrInvalidInput)
		}
	}

	if err := s.repo.SetFolders(ctx, ownerID, id, normalized); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, ownerID, id)
}

func (s *documentService) MoveToFolder(ctx context.Context, ownerID, id int64, folderID *int64) (*model.Document, error) {
	if folderID == nil {
		return s.SetFolders(ctx, ownerID, id, nil)
	}
	return s.SetFolders(ctx, ownerID, id, []int64{*folderID})
}

func (s *documentService) List(ctx context.Context, ownerID int64, folderID *int64) (*DocumentListResult, error) {
	docs, err := s.repo.List(ctx, ownerID, folderID)
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: docs, Total: len(docs)}, nil
}

// normalizeIDSet deduplicates and sorts the membership set so the repository
// receives a canonical form and repeated calls are idempotent.
func normalizeIDSet(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
