package mocks

import (
	"context"
	"time"

	"assetz/internal/model"
	"assetz/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) CreateType(ctx context.Context, t *model.MaintenanceType) (*model.MaintenanceType, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceType), args.Error(1)
}

func (m *MockMaintenanceRepository) FindTypeByID(ctx context.Context, id string) (*model.MaintenanceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceType), args.Error(1)
}

func (m *MockMaintenanceRepository) ListTypes(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.MaintenanceType], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.MaintenanceType]), args.Error(1)
}

func (m *MockMaintenanceRepository) CreateRequest(ctx context.Context, r *model.MaintenanceRequest) (*model.MaintenanceRequest, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceRepository) FindRequestByID(ctx context.Context, id string) (*model.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceRepository) ListRequests(ctx context.Context, status string, pq repository.PageQuery) (*repository.PageResult[model.MaintenanceRequest], error) {
	args := m.Called(ctx, status, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.MaintenanceRequest]), args.Error(1)
}

func (m *MockMaintenanceRepository) UpdateRequest(ctx context.Context, r *model.MaintenanceRequest) (*model.MaintenanceRequest, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceRepository) LastRequestNumber(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

func (m *MockMaintenanceRepository) CreateSchedule(ctx context.Context, s *model.MaintenanceSchedule) (*model.MaintenanceSchedule, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceSchedule), args.Error(1)
}

func (m *MockMaintenanceRepository) FindScheduleByID(ctx context.Context, id string) (*model.MaintenanceSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceSchedule), args.Error(1)
}

func (m *MockMaintenanceRepository) ListSchedules(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.MaintenanceSchedule], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.MaintenanceSchedule]), args.Error(1)
}

func (m *MockMaintenanceRepository) UpdateSchedule(ctx context.Context, s *model.MaintenanceSchedule) (*model.MaintenanceSchedule, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceSchedule), args.Error(1)
}

func (m *MockMaintenanceRepository) DueSchedules(ctx context.Context, cutoff time.Time) ([]model.MaintenanceSchedule, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MaintenanceSchedule), args.Error(1)
}
