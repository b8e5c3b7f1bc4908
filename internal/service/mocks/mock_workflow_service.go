package mocks

import (
	"context"

	"assetz/internal/model"
	"assetz/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockWorkflowService struct {
	mock.Mock
}

func (m *MockWorkflowService) RequestTransfer(ctx context.Context, actor service.Actor, meta service.RequestMeta, in service.TransferInput) (*model.AssetTransfer, error) {
	args := m.Called(ctx, actor, meta, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetTransfer), args.Error(1)
}

func (m *MockWorkflowService) GetTransfer(ctx context.Context, id string) (*model.AssetTransfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetTransfer), args.Error(1)
}

func (m *MockWorkflowService) ListTransfers(ctx context.Context, status string, limit, offset int) (*service.TransferListResult, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TransferListResult), args.Error(1)
}

func (m *MockWorkflowService) ApproveTransfer(ctx context.Context, actor service.Actor, meta service.RequestMeta, id, remarks string) (*model.AssetTransfer, error) {
	args := m.Called(ctx, actor, meta, id, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetTransfer), args.Error(1)
}

func (m *MockWorkflowService) RejectTransfer(ctx context.Context, actor service.Actor, meta service.RequestMeta, id, remarks string) (*model.AssetTransfer, error) {
	args := m.Called(ctx, actor, meta, id, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetTransfer), args.Error(1)
}

func (m *MockWorkflowService) CompleteTransfer(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) (*model.AssetTransfer, error) {
	args := m.Called(ctx, actor, meta, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetTransfer), args.Error(1)
}

func (m *MockWorkflowService) CancelTransfer(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) (*model.AssetTransfer, error) {
	args := m.Called(ctx, actor, meta, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetTransfer), args.Error(1)
}

func (m *MockWorkflowService) RequestDisposal(ctx context.Context, actor service.Actor, meta service.RequestMeta, in service.DisposalInput) (*model.AssetDisposal, error) {
	args := m.Called(ctx, actor, meta, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetDisposal), args.Error(1)
}

func (m *MockWorkflowService) GetDisposal(ctx context.Context, id string) (*model.AssetDisposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetDisposal), args.Error(1)
}

func (m *MockWorkflowService) ListDisposals(ctx context.Context, status string, limit, offset int) (*service.DisposalListResult, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DisposalListResult), args.Error(1)
}

func (m *MockWorkflowService) ApproveDisposal(ctx context.Context, actor service.Actor, meta service.RequestMeta, id, remarks string) (*model.AssetDisposal, error) {
	args := m.Called(ctx, actor, meta, id, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetDisposal), args.Error(1)
}

func (m *MockWorkflowService) RejectDisposal(ctx context.Context, actor service.Actor, meta service.RequestMeta, id, remarks string) (*model.AssetDisposal, error) {
	args := m.Called(ctx, actor, meta, id, remarks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetDisposal), args.Error(1)
}

func (m *MockWorkflowService) CompleteDisposal(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) (*model.AssetDisposal, error) {
	args := m.Called(ctx, actor, meta, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetDisposal), args.Error(1)
}

func (m *MockWorkflowService) CancelDisposal(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) (*model.AssetDisposal, error) {
	args := m.Called(ctx, actor, meta, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssetDisposal), args.Error(1)
}
