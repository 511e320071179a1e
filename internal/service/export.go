package service

import (
	"context"

	"textvault/internal/export"
	"textvault/internal/repository"
)

// ExportService renders an owned document into a download format. The core
// only supplies the document's filename/text fields; rendering is the
// registry's concern.
type ExportService interface {
	Download(ctx context.Context, ownerID, id int64, format string) (*export.Result, error)
}

type exportService struct {
	docs     repository.DocumentRepository
	registry *export.Registry
}

// NewExportService constructs a new ExportService.
func NewExportService(docs repository.DocumentRepository, registry *export.Registry) ExportService {
	return &exportService{docs: docs, registry: registry}
}

func (s *exportService) Download(ctx context.Context, ownerID, id int64, format string) (*export.Result, error) {
	doc, err := s.docs.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.registry.Render(doc, format)
}
