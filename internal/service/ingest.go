package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"textvault/internal/apperr"
	"textvault/internal/model"
	"textvault/internal/ocr"
	"textvault/internal/repository"
	"textvault/internal/storage"
)

// IngestService turns an uploaded image into a document: the original bytes
// go to object storage, the OCR engine extracts the text, and the document
// row is created with no folder associations.
type IngestService interface {
	// Ingest processes one upload. The extracted text is stored verbatim,
	// including the empty string.
	Ingest(ctx context.Context, ownerID int64, filename, contentType string, size int64, r io.Reader) (*model.Document, error)

	// Image streams the stored original image of a document, returning the
	// reader and the content type derived from the document filename.
	Image(ctx context.Context, ownerID, id int64) (io.ReadCloser, string, error)
}

type ingestService struct {
	store       storage.Storage
	engine      ocr.Engine
	docs        repository.DocumentRepository
	maxUploadMB int64
}

// NewIngestService constructs a new IngestService.
func NewIngestService(store storage.Storage, engine ocr.Engine, docs repository.DocumentRepository, maxUploadMB int64) IngestService {
	return &ingestService{store: store, engine: engine, docs: docs, maxUploadMB: maxUploadMB}
}

func (s *ingestService) Ingest(ctx context.Context, ownerID int64, filename, contentType string, size int64, r io.Reader) (*model.Document, error) {
	if r == nil {
		return nil, fmt.Errorf("upload body missing: %w", apperr.ErrInvalidInput)
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, fmt.Errorf("filename must not be empty: %w", apperr.ErrInvalidInput)
	}
	maxBytes := s.maxUploadMB * 1024 * 1024
	if size > maxBytes {
		return nil, fmt.Errorf("file too large, maximum %dMB: %w", s.maxUploadMB, apperr.ErrInvalidInput)
	}

	// The bytes are needed twice (storage and OCR), so buffer with a hard cap
	// in case the declared size was wrong.
	content, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(content)) > maxBytes {
		return nil, fmt.Errorf("file too large, maximum %dMB: %w", s.maxUploadMB, apperr.ErrInvalidInput)
	}

	key := "images/" + uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(content), storage.PutObjectOptions{
		Size:        int64(len(content)),
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": filename},
	})
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	text, err := s.engine.ExtractText(ctx, content)
	if err != nil {
		s.rollbackObject(ctx, key)
		return nil, fmt.Errorf("extract text: %v: %w", err, apperr.ErrUpstream)
	}

	doc, err := s.docs.Create(ctx, &model.Document{
		OwnerID:   ownerID,
		Filename:  filename,
		Text:      text,
		Format:    FormatTag(filename),
		ImagePath: objInfo.Key,
		ImageSize: objInfo.Size,
	})
	if err != nil {
		s.rollbackObject(ctx, key)
		return nil, fmt.Errorf("save document: %w", err)
	}
	return doc, nil
}

func (s *ingestService) Image(ctx context.Context, ownerID, id int64) (io.ReadCloser, string, error) {
	doc, err := s.docs.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, "", err
	}
	if doc.ImagePath == "" {
		return nil, "", fmt.Errorf("image data for document %d: %w", id, apperr.ErrNotFound)
	}

	rc, _, err := s.store.Get(ctx, doc.ImagePath)
	if err != nil {
		return nil, "", fmt.Errorf("load image: %v: %w", err, apperr.ErrUpstream)
	}
	return rc, imageContentType(doc.Filename), nil
}

// rollbackObject removes a stored object after a failed ingestion; the
// original error is the one reported to the caller.
func (s *ingestService) rollbackObject(ctx context.Context, key string) {
	_ = s.store.Delete(ctx, key)
}

// imageContentType maps a filename extension to the media type used when
// re-serving the original image.
func imageContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
