package mocks

import (
	"context"
	"io"
	"time"

	"assetz/internal/model"
	"assetz/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, actor service.Actor, meta service.RequestMeta, assetID, documentType, title string, r io.Reader, originalFilename, contentType string, size int64) (*model.AssetDocument, error) {
	args := m.Called(ctx, actor, meta, assetID, documentType, title, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetDocument), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, id string) (*model.AssetDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetDocument), args.Error(1)
}

func (m *MockDocumentService) ListByAsset(ctx context.Context, assetID string, limit, offset int) (*service.DocumentListResult, error) {
	args := m.Called(ctx, assetID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentListResult), args.Error(1)
}

func (m *MockDocumentService) DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, id, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) error {
	args := m.Called(ctx, actor, meta, id)
	return args.Error(0)
}
