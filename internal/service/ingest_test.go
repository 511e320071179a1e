package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"textvault/internal/apperr"
	"textvault/internal/model"
	ocrMocks "textvault/internal/ocr/mocks"
	repoMocks "textvault/internal/repository/mocks"
	"textvault/internal/storage"
	storeMocks "textvault/internal/storage/mocks"
)

const testMaxUploadMB = 1

func newIngestMocks() (*storeMocks.MockStorage, *ocrMocks.MockEngine, *repoMocks.MockDocumentRepository, IngestService) {
	mStore := new(storeMocks.MockStorage)
	mEngine := new(ocrMocks.MockEngine)
	mRepo := new(repoMocks.MockDocumentRepository)
	svc := NewIngestService(mStore, mEngine, mRepo, testMaxUploadMB)
	return mStore, mEngine, mRepo, svc
}

func TestIngestService_Ingest(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mStore, mEngine, mRepo, svc := newIngestMocks()

		content := "fake image bytes"
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "images/") && strings.HasSuffix(key, ".png")
		}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.Size == int64(len(content)) && opt.ContentType == "image/png"
		})).Return(storage.ObjectInfo{Key: "images/key.png", Size: int64(len(content))}, nil)

		mEngine.On("ExtractText", ctx, []byte(content)).Return("extracted text", nil)

		mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.Document) bool {
			return doc.OwnerID == ownerID &&
				doc.Filename == "scan.png" &&
				doc.Text == "extracted text" &&
				doc.Format == "png" &&
				doc.ImagePath == "images/key.png"
		})).Return(&model.Document{ID: 1, Filename: "scan.png", Text: "extracted text"}, nil)

		doc, err := svc.Ingest(ctx, ownerID, "scan.png", "image/png", int64(len(content)), strings.NewReader(content))

		require.NoError(t, err)
		assert.Equal(t, int64(1), doc.ID)
		mStore.AssertExpectations(t)
		mEngine.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("empty extracted text is stored verbatim", func(t *testing.T) {
		mStore, mEngine, mRepo, svc := newIngestMocks()

		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{Key: "images/key.png"}, nil)
		mEngine.On("ExtractText", ctx, mock.Anything).Return("", nil)
		mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.Document) bool {
			return doc.Text == ""
		})).Return(&model.Document{ID: 2, Text: ""}, nil)

		doc, err := svc.Ingest(ctx, ownerID, "blank.png", "image/png", 3, strings.NewReader("abc"))

		require.NoError(t, err)
		assert.Equal(t, "", doc.Text)
		mRepo.AssertExpectations(t)
	})

	t.Run("nil reader", func(t *testing.T) {
		_, _, _, svc := newIngestMocks()

		doc, err := svc.Ingest(ctx, ownerID, "scan.png", "image/png", 3, nil)

		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Nil(t, doc)
	})

	t.Run("empty filename", func(t *testing.T) {
		_, _, _, svc := newIngestMocks()

		doc, err := svc.Ingest(ctx, ownerID, "  ", "image/png", 3, strings.NewReader("abc"))

		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Nil(t, doc)
	})

	t.Run("declared size over the limit", func(t *testing.T) {
		mStore, _, _, svc := newIngestMocks()

		doc, err := svc.Ingest(ctx, ownerID, "big.png", "image/png", 2*1024*1024, strings.NewReader("abc"))

		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Nil(t, doc)
		mStore.AssertNotCalled(t, "Put")
	})

	t.Run("actual size over the limit despite small declared size", func(t *testing.T) {
		mStore, _, _, svc := newIngestMocks()

		oversized := strings.NewReader(strings.Repeat("a", testMaxUploadMB*1024*1024+1))
		doc, err := svc.Ingest(ctx, ownerID, "big.png", "image/png", 10, oversized)

		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Nil(t, doc)
		mStore.AssertNotCalled(t, "Put")
	})

	t.Run("ocr failure rolls back the stored object", func(t *testing.T) {
		mStore, mEngine, mRepo, svc := newIngestMocks()

		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
				return storage.ObjectInfo{Key: key}
			}, nil)
		mEngine.On("ExtractText", ctx, mock.Anything).Return("", errors.New("tesseract crashed"))
		mStore.On("Delete", ctx, mock.Anything).Return(nil)

		doc, err := svc.Ingest(ctx, ownerID, "scan.png", "image/png", 3, strings.NewReader("abc"))

		assert.ErrorIs(t, err, apperr.ErrUpstream)
		assert.Nil(t, doc)
		mStore.AssertExpectations(t)
		mRepo.AssertNotCalled(t, "Create")
	})

	t.Run("db failure rolls back the stored object", func(t *testing.T) {
		mStore, mEngine, mRepo, svc := newIngestMocks()

		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
				return storage.ObjectInfo{Key: key}
			}, nil)
		mEngine.On("ExtractText", ctx, mock.Anything).Return("text", nil)
		mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
		mStore.On("Delete", ctx, mock.Anything).Return(nil)

		doc, err := svc.Ingest(ctx, ownerID, "scan.png", "image/png", 3, strings.NewReader("abc"))

		assert.Error(t, err)
		assert.Nil(t, doc)
		mStore.AssertExpectations(t)
	})
}

func TestIngestService_Image(t *testing.T) {
	ctx := context.Background()

	t.Run("streams with content type from filename", func(t *testing.T) {
		mStore, _, mRepo, svc := newIngestMocks()

		mRepo.On("FindByID", ctx, ownerID, int64(1)).
			Return(&model.Document{ID: 1, Filename: "scan.jpg", ImagePath: "images/key.jpg"}, nil)
		mStore.On("Get", ctx, "images/key.jpg").
			Return(io.NopCloser(strings.NewReader("jpeg bytes")), storage.ObjectInfo{}, nil)

		rc, contentType, err := svc.Image(ctx, ownerID, 1)

		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", contentType)
		data, _ := io.ReadAll(rc)
		rc.Close()
		assert.Equal(t, "jpeg bytes", string(data))
		mStore.AssertExpectations(t)
	})

	t.Run("document without stored image", func(t *testing.T) {
		_, _, mRepo, svc := newIngestMocks()

		mRepo.On("FindByID", ctx, ownerID, int64(1)).
			Return(&model.Document{ID: 1, Filename: "manual.txt", ImagePath: ""}, nil)

		rc, _, err := svc.Image(ctx, ownerID, 1)

		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Nil(t, rc)
	})

	t.Run("storage failure maps to upstream error", func(t *testing.T) {
		mStore, _, mRepo, svc := newIngestMocks()

		mRepo.On("FindByID", ctx, ownerID, int64(1)).
			Return(&model.Document{ID: 1, Filename: "scan.png", ImagePath: "images/key.png"}, nil)
		mStore.On("Get", ctx, "images/key.png").
			Return(nil, storage.ObjectInfo{}, errors.New("object gone"))

		rc, _, err := svc.Image(ctx, ownerID, 1)

		assert.ErrorIs(t, err, apperr.ErrUpstream)
		assert.Nil(t, rc)
	})
}

func TestImageContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.jpg", "image/jpeg"},
		{"a.JPEG", "image/jpeg"},
		{"a.gif", "image/gif"},
		{"a.png", "image/png"},
		{"a.bmp", "image/png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, imageContentType(tt.filename), tt.filename)
	}
}
