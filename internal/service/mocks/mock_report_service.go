package mocks

import (
	"context"
	"io"

	"assetz/internal/model"
	"assetz/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Summary(ctx context.Context) (*service.AssetSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AssetSummary), args.Error(1)
}

func (m *MockReportService) Depreciation(ctx context.Context) ([]service.DepreciationEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.DepreciationEntry), args.Error(1)
}

func (m *MockReportService) ExpiringCoverage(ctx context.Context, days int) ([]model.Asset, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Asset), args.Error(1)
}

func (m *MockReportService) ExportAssetsCSV(ctx context.Context, actor service.Actor, meta service.RequestMeta, w io.Writer) error {
	args := m.Called(ctx, actor, meta, w)
	return args.Error(0)
}
