package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"textvault/internal/model"
	"textvault/internal/repository"
)

// AnalyticsPostgres is a PostgreSQL implementation of
// repository.AnalyticsRepository. All aggregates are computed from the live
// tables on each call.
type AnalyticsPostgres struct {
	db *sql.DB
}

// NewAnalyticsPostgres creates a new AnalyticsPostgres repository.
func NewAnalyticsPostgres(db *sql.DB) *AnalyticsPostgres {
	return &AnalyticsPostgres{db: db}
}

var _ repository.AnalyticsRepository = (*AnalyticsPostgres)(nil)

// Overview computes document totals, the current calendar-month count, the
// folder total and the summed extracted-text length.
func (r *AnalyticsPostgres) Overview(ctx context.Context, ownerID int64) (*model.AnalyticsOverview, error) {
	var o model.AnalyticsOverview

	const qDocs = `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE created_at >= date_trunc('month', now())),
		       COALESCE(SUM(length(text)), 0)
		FROM documents
		WHERE owner_id = $1
	`
	if err := r.db.QueryRowContext(ctx, qDocs, ownerID).Scan(
		&o.TotalDocuments,
		&o.DocumentsThisMonth,
		&o.TotalTextCharacters,
	); err != nil {
		return nil, fmt.Errorf("overview documents: %w", err)
	}

	const qFolders = `SELECT COUNT(*) FROM folders WHERE owner_id = $1`
	if err := r.db.QueryRowContext(ctx, qFolders, ownerID).Scan(&o.TotalFolders); err != nil {
		return nil, fmt.Errorf("overview folders: %w", err)
	}

	return &o, nil
}

// FolderDistribution counts member documents per folder, including empty
// folders.
func (r *AnalyticsPostgres) FolderDistribution(ctx context.Context, ownerID int64) ([]model.FolderCount, error) {
	const q = `
		SELECT f.id, f.name, COUNT(df.document_id)
		FROM folders f
		LEFT JOIN document_folders df ON df.folder_id = f.id
		WHERE f.owner_id = $1
		GROUP BY f.id, f.name
		ORDER BY COUNT(df.document_id) DESC, f.name
	`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("folder distribution: %w", err)
	}
	defer rows.Close()

	dist := make([]model.FolderCount, 0)
	for rows.Next() {
		var fc model.FolderCount
		if err := rows.Scan(&fc.FolderID, &fc.FolderName, &fc.DocumentCount); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		dist = append(dist, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distribution: %w", err)
	}
	return dist, nil
}

// FileFormats counts documents per format tag.
func (r *AnalyticsPostgres) FileFormats(ctx context.Context, ownerID int64) (map[string]int, error) {
	const q = `
		SELECT format, COUNT(*)
		FROM documents
		WHERE owner_id = $1
		GROUP BY format
	`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("file formats: %w", err)
	}
	defer rows.Close()

	formats := make(map[string]int)
	for rows.Next() {
		var format string
		var count int
		if err := rows.Scan(&format, &count); err != nil {
			return nil, fmt.Errorf("scan format: %w", err)
		}
		formats[format] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate formats: %w", err)
	}
	return formats, nil
}

// Recent returns the owner's newest documents.
func (r *AnalyticsPostgres) Recent(ctx context.Context, ownerID int64, limit int) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent documents: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}
