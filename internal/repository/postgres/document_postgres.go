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

const documentColumns = "id, owner_id, filename, text, format, image_path, image_size, created_at"

// DocumentPostgres is a PostgreSQL implementation of
// repository.DocumentRepository. It uses database/sql with parameterized
// queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

func scanDocument(row interface{ Scan(dest ...any) error }) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.OwnerID,
		&d.Filename,
		&d.Text,
		&d.Format,
		&d.ImagePath,
		&d.ImageSize,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	d.Folders = []model.FolderRef{}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (owner_id, filename, text, format, image_path, image_size)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.OwnerID,
		doc.Filename,
		doc.Text,
		doc.Format,
		doc.ImagePath,
		doc.ImageSize,
	)
	out, err := scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return out, nil
}

// FindByID fetches a single document with its folder memberships.
func (r *DocumentPostgres) FindByID(ctx context.Context, ownerID, id int64) (*model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1 AND owner_id = $2
	`
	doc, err := scanDocument(r.db.QueryRowContext(ctx, q, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	docs := []model.Document{*doc}
	if err := r.attachFolders(ctx, docs); err != nil {
		return nil, err
	}
	return &docs[0], nil
}

// Update persists filename, text and format and returns the stored record.
func (r *DocumentPostgres) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		UPDATE documents
		SET filename = $1, text = $2, format = $3
		WHERE id = $4 AND owner_id = $5
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.Filename,
		doc.Text,
		doc.Format,
		doc.ID,
		doc.OwnerID,
	)
	out, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document %d: %w", doc.ID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("update document: %w", err)
	}
	docs := []model.Document{*out}
	if err := r.attachFolders(ctx, docs); err != nil {
		return nil, err
	}
	return &docs[0], nil
}

// Delete removes the document's folder associations and then the document
// itself, all within one transaction.
func (r *DocumentPostgres) Delete(ctx context.Context, ownerID, id int64) error {
	return execTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists bool
		const qExists = `SELECT EXISTS (SELECT 1 FROM documents WHERE id = $1 AND owner_id = $2)`
		if err := tx.QueryRowContext(ctx, qExists, id, ownerID).Scan(&exists); err != nil {
			return fmt.Errorf("check document: %w", err)
		}
		if !exists {
			return fmt.Errorf("document %d: %w", id, apperr.ErrNotFound)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM document_folders WHERE document_id = $1`, id); err != nil {
			return fmt.Errorf("delete associations: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE id = $1 AND owner_id = $2`, id, ownerID); err != nil {
			return fmt.Errorf("delete document: %w", err)
		}
		return nil
	})
}

// List returns the owner's documents, newest first, optionally filtered to
// members of folderID.
func (r *DocumentPostgres) List(ctx context.Context, ownerID int64, folderID *int64) ([]model.Document, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if folderID != nil {
		const q = `
			SELECT ` + documentColumns + `
			FROM documents
			WHERE owner_id = $1
			  AND id IN (SELECT document_id FROM document_folders WHERE folder_id = $2)
			ORDER BY created_at DESC, id DESC
		`
		rows, err = r.db.QueryContext(ctx, q, ownerID, *folderID)
	} else {
		const q = `
			SELECT ` + documentColumns + `
			FROM documents
			WHERE owner_id = $1
			ORDER BY created_at DESC, id DESC
		`
		rows, err = r.db.QueryContext(ctx, q, ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs, err := collectDocuments(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachFolders(ctx, docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// SetFolders replaces the document's entire membership set in one
// transaction. The folder ownership check runs inside the same transaction,
// so a concurrent folder deletion either happens entirely before (the check
// fails with ErrInvalidInput) or entirely after this call; an insert hitting
// a folder deleted mid-flight surfaces as a foreign key violation mapped to
// ErrConflict.
func (r *DocumentPostgres) SetFolders(ctx context.Context, ownerID, docID int64, folderIDs []int64) error {
	return execTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists bool
		const qExists = `SELECT EXISTS (SELECT 1 FROM documents WHERE id = $1 AND owner_id = $2)`
		if err := tx.QueryRowContext(ctx, qExists, docID, ownerID).Scan(&exists); err != nil {
			return fmt.Errorf("check document: %w", err)
		}
		if !exists {
			return fmt.Errorf("document %d: %w", docID, apperr.ErrNotFound)
		}

		if len(folderIDs) > 0 {
			var owned int
			const qOwned = `SELECT COUNT(*) FROM folders WHERE owner_id = $1 AND id = ANY($2)`
			if err := tx.QueryRowContext(ctx, qOwned, ownerID, folderIDs).Scan(&owned); err != nil {
				return fmt.Errorf("check folders: %w", err)
			}
			if owned != len(folderIDs) {
				return fmt.Errorf("one or more folders not found: %w", apperr.ErrInvalidInput)
			}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM document_folders WHERE document_id = $1`, docID); err != nil {
			return fmt.Errorf("clear associations: %w", err)
		}

		if len(folderIDs) > 0 {
			const qInsert = `
				INSERT INTO document_folders (document_id, folder_id)
				SELECT $1, unnest($2::bigint[])
			`
			if _, err := tx.ExecContext(ctx, qInsert, docID, folderIDs); err != nil {
				if isForeignKeyError(err) || isSerializationError(err) {
					return fmt.Errorf("membership invalidated concurrently: %w", apperr.ErrConflict)
				}
				return fmt.Errorf("insert associations: %w", err)
			}
		}
		return nil
	})
}

// Search matches the query as a case-insensitive substring against the
// fields selected by scope.
func (r *DocumentPostgres) Search(ctx context.Context, ownerID int64, query string, scope repository.SearchScope) ([]model.Document, error) {
	var predicate string
	switch scope {
	case repository.ScopeFilename:
		predicate = `filename ILIKE '%' || $2 || '%'`
	case repository.ScopeContent:
		predicate = `text ILIKE '%' || $2 || '%'`
	default:
		predicate = `(filename ILIKE '%' || $2 || '%' OR text ILIKE '%' || $2 || '%')`
	}

	q := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE owner_id = $1 AND ` + predicate + `
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, ownerID, query)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}
	defer rows.Close()

	docs, err := collectDocuments(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachFolders(ctx, docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func collectDocuments(rows *sql.Rows) ([]model.Document, error) {
	docs := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

// attachFolders loads the membership sets of the given documents in a single
// query and fills Document.Folders in place.
func (r *DocumentPostgres) attachFolders(ctx context.Context, docs []model.Document) error {
	if len(docs) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(docs))
	index := make(map[int64]*model.Document, len(docs))
	for i := range docs {
		ids = append(ids, docs[i].ID)
		index[docs[i].ID] = &docs[i]
	}

	const q = `
		SELECT df.document_id, f.id, f.name
		FROM document_folders df
		JOIN folders f ON f.id = df.folder_id
		WHERE df.document_id = ANY($1)
		ORDER BY f.created_at, f.id
	`
	rows, err := r.db.QueryContext(ctx, q, ids)
	if err != nil {
		return fmt.Errorf("load memberships: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var docID int64
		var ref model.FolderRef
		if err := rows.Scan(&docID, &ref.ID, &ref.Name); err != nil {
			return fmt.Errorf("scan membership: %w", err)
		}
		if d, ok := index[docID]; ok {
			d.Folders = append(d.Folders, ref)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate memberships: %w", err)
	}
	return nil
}
