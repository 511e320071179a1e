package repository

import (
	"context"

	"textvault/internal/model"
)

// FolderRepository defines data access for folders. Owner-scoped like
// DocumentRepository.
type FolderRepository interface {
	// Create inserts a new folder and returns the stored record. A name
	// collision within the owner scope yields apperr.ErrDuplicateName.
	Create(ctx context.Context, folder *model.Folder) (*model.Folder, error)

	// List returns the owner's folders ordered by creation time ascending
	// (id ascending tie-break).
	List(ctx context.Context, ownerID int64) ([]model.Folder, error)

	// Delete removes the folder and all associations referencing it in one
	// transaction, returning the number of documents that were members
	// immediately before deletion. Returns apperr.ErrNotFound when the
	// folder is absent or not owned.
	Delete(ctx context.Context, ownerID, id int64) (int, error)
}
