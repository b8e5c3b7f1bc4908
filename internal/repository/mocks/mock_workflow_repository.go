package mocks

import (
	"context"

	"assetz/internal/model"
	"assetz/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) Create(ctx context.Context, t *model.AssetTransfer) (*model.AssetTransfer, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetTransfer), args.Error(1)
}

func (m *MockTransferRepository) FindByID(ctx context.Context, id string) (*model.AssetTransfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetTransfer), args.Error(1)
}

func (m *MockTransferRepository) List(ctx context.Context, status string, pq repository.PageQuery) (*repository.PageResult[model.AssetTransfer], error) {
	args := m.Called(ctx, status, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.AssetTransfer]), args.Error(1)
}

func (m *MockTransferRepository) Update(ctx context.Context, t *model.AssetTransfer) (*model.AssetTransfer, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetTransfer), args.Error(1)
}

func (m *MockTransferRepository) LastNumber(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

type MockDisposalRepository struct {
	mock.Mock
}

func (m *MockDisposalRepository) Create(ctx context.Context, d *model.AssetDisposal) (*model.AssetDisposal, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetDisposal), args.Error(1)
}

func (m *MockDisposalRepository) FindByID(ctx context.Context, id string) (*model.AssetDisposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetDisposal), args.Error(1)
}

func (m *MockDisposalRepository) List(ctx context.Context, status string, pq repository.PageQuery) (*repository.PageResult[model.AssetDisposal], error) {
	args := m.Called(ctx, status, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.AssetDisposal]), args.Error(1)
}

func (m *MockDisposalRepository) Update(ctx context.Context, d *model.AssetDisposal) (*model.AssetDisposal, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetDisposal), args.Error(1)
}

func (m *MockDisposalRepository) LastNumber(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}
