package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"textvault/internal/apperr"
	"textvault/internal/model"
	"textvault/internal/repository"
)

// FolderPostgres is a PostgreSQL implementation of
// repository.FolderRepository.
type FolderPostgres struct {
	db *sql.DB
}

// NewFolderPostgres creates a new FolderPostgres repository.
func NewFolderPostgres(db *sql.DB) *FolderPostgres {
	return &FolderPostgres{db: db}
}

var _ repository.FolderRepository = (*FolderPostgres)(nil)

// Create inserts a new folder row. The (owner_id, name) unique constraint
// guards against a duplicate racing past the service-level check; the
// violation maps to ErrDuplicateName either way.
func (r *FolderPostgres) Create(ctx context.Context, folder *model.Folder) (*model.Folder, error) {
	const q = `
		INSERT INTO folders (owner_id, name)
		VALUES ($1, $2)
		RETURNING id, owner_id, name, created_at
	`
	var out model.Folder
	err := r.db.QueryRowContext(ctx, q, folder.OwnerID, folder.Name).Scan(
		&out.ID,
		&out.OwnerID,
		&out.Name,
		&out.CreatedAt,
	)
	if err != nil {
		if isDuplicateError(err) {
			return nil, fmt.Errorf("folder %q: %w", folder.Name, apperr.ErrDuplicateName)
		}
		return nil, fmt.Errorf("create folder: %w", err)
	}
	return &out, nil
}

// List returns the owner's folders ordered by creation time ascending.
func (r *FolderPostgres) List(ctx context.Context, ownerID int64) ([]model.Folder, error) {
	const q = `
		SELECT id, owner_id, name, created_at
		FROM folders
		WHERE owner_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	folders := make([]model.Folder, 0)
	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Name, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}
	return folders, nil
}

// Delete removes all associations referencing the folder and the folder row
// itself in one transaction. Member documents are untouched; the returned
// count is the number of associations removed.
func (r *FolderPostgres) Delete(ctx context.Context, ownerID, id int64) (int, error) {
	var moved int
	err := execTx(ctx, r.db, func(tx *sql.Tx) error {
		var folderID int64
		const qLock = `SELECT id FROM folders WHERE id = $1 AND owner_id = $2 FOR UPDATE`
		if err := tx.QueryRowContext(ctx, qLock, id, ownerID).Scan(&folderID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("folder %d: %w", id, apperr.ErrNotFound)
			}
			return fmt.Errorf("check folder: %w", err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM document_folders WHERE folder_id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete associations: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("count associations: %w", err)
		}
		moved = int(affected)

		if _, err := tx.ExecContext(ctx, `DELETE FROM folders WHERE id = $1 AND owner_id = $2`, id, ownerID); err != nil {
			return fmt.Errorf("delete folder: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return moved, nil
}
