package mocks

import (
	"context"
	"time"

	"assetz/internal/model"
	"assetz/internal/repository"
	"assetz/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) Create(ctx context.Context, actor service.Actor, meta service.RequestMeta, a *model.Asset) (*model.Asset, error) {
	args := m.Called(ctx, actor, meta, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) Get(ctx context.Context, id string) (*model.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) GetByQRCode(ctx context.Context, qr string) (*model.Asset, error) {
	args := m.Called(ctx, qr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) List(ctx context.Context, f repository.AssetFilter, limit, offset int) (*service.AssetListResult, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AssetListResult), args.Error(1)
}

func (m *MockAssetService) Update(ctx context.Context, actor service.Actor, meta service.RequestMeta, a *model.Asset) (*model.Asset, error) {
	args := m.Called(ctx, actor, meta, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) Delete(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) error {
	args := m.Called(ctx, actor, meta, id)
	return args.Error(0)
}

func (m *MockAssetService) Assign(ctx context.Context, actor service.Actor, meta service.RequestMeta, id, userID, remarks string) (*model.Asset, error) {
	args := m.Called(ctx, actor, meta, id, userID, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) Return(ctx context.Context, actor service.Actor, meta service.RequestMeta, id, remarks string) (*model.Asset, error) {
	args := m.Called(ctx, actor, meta, id, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) ChangeStatus(ctx context.Context, actor service.Actor, meta service.RequestMeta, id, status, remarks string) (*model.Asset, error) {
	args := m.Called(ctx, actor, meta, id, status, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asset), args.Error(1)
}

func (m *MockAssetService) History(ctx context.Context, assetID string, limit, offset int) (*service.HistoryListResult, error) {
	args := m.Called(ctx, assetID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HistoryListResult), args.Error(1)
}

func (m *MockAssetService) BookValue(ctx context.Context, id string) (*service.BookValueResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BookValueResult), args.Error(1)
}

func (m *MockAssetService) QRImage(ctx context.Context, id string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, id, expiry)
	return args.String(0), args.Error(1)
}
