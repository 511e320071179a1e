package repository

import (
	"context"

	"textvault/internal/model"
)

// SearchScope selects which document fields a search query is matched
// against.
type SearchScope string

const (
	ScopeAll      SearchScope = "all"
	ScopeFilename SearchScope = "filename"
	ScopeContent  SearchScope = "content"
)

// Valid reports whether the scope is one of the supported selectors.
func (s SearchScope) Valid() bool {
	switch s {
	case ScopeAll, ScopeFilename, ScopeContent:
		return true
	}
	return false
}

// DocumentRepository defines data access for documents and their folder
// memberships. SQL only, no business logic. Every method is owner-scoped:
// rows of other owners behave as if they do not exist.
type DocumentRepository interface {
	// Create inserts a new document and returns the stored record with its
	// server-assigned id and timestamp.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document with its folder memberships, or
	// apperr.ErrNotFound.
	FindByID(ctx context.Context, ownerID, id int64) (*model.Document, error)

	// Update persists filename, text and format of an existing document and
	// returns the stored record, or apperr.ErrNotFound.
	Update(ctx context.Context, doc *model.Document) (*model.Document, error)

	// Delete removes the document and all its folder associations in one
	// transaction, or returns apperr.ErrNotFound.
	Delete(ctx context.Context, ownerID, id int64) error

	// List returns the owner's documents ordered by creation time descending
	// (id descending tie-break), optionally filtered to members of folderID.
	List(ctx context.Context, ownerID int64, folderID *int64) ([]model.Document, error)

	// SetFolders atomically replaces the document's entire membership set.
	// It returns apperr.ErrNotFound when the document is not owned,
	// apperr.ErrInvalidInput when any folder id is not owned by the same
	// owner, and apperr.ErrConflict when a concurrent folder deletion
	// invalidates the replacement. No partial membership change persists.
	SetFolders(ctx context.Context, ownerID, docID int64, folderIDs []int64) error

	// Search returns documents whose selected fields contain the query as a
	// case-insensitive substring, ordered like List.
	Search(ctx context.Context, ownerID int64, query string, scope SearchScope) ([]model.Document, error)
}
