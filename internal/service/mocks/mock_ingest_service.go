package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"textvault/internal/model"
)

type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) Ingest(ctx context.Context, ownerID int64, filename, contentType string, size int64, r io.Reader) (*model.Document, error) {
	args := m.Called(ctx, ownerID, filename, contentType, size, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockIngestService) Image(ctx context.Context, ownerID, id int64) (io.ReadCloser, string, error) {
	args := m.Called(ctx, ownerID, id)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.String(1), args.Error(2)
}
