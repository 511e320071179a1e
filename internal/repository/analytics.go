package repository

import (
	"context"

	"textvault/internal/model"
)

// AnalyticsRepository exposes the aggregate reads the dashboard is computed
// from. Every call is a live scan of the owner's rows; there is no cached
// materialized view.
type AnalyticsRepository interface {
	// Overview returns document/folder totals, the calendar-month count and
	// the summed text length. AvgTextLengthPerDocument is left to the
	// service.
	Overview(ctx context.Context, ownerID int64) (*model.AnalyticsOverview, error)

	// FolderDistribution returns per-folder document counts sorted by count
	// descending (name ascending tie-break). Folders with no documents are
	// included with a zero count.
	FolderDistribution(ctx context.Context, ownerID int64) ([]model.FolderCount, error)

	// FileFormats returns a format tag to document count mapping.
	FileFormats(ctx context.Context, ownerID int64) (map[string]int, error)

	// Recent returns the most recent documents, newest first.
	Recent(ctx context.Context, ownerID int64, limit int) ([]model.Document, error)
}
