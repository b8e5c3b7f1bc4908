package mocks

import (
	"context"
	"time"

	"assetz/internal/model"
	"assetz/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) CreateType(ctx context.Context, actor service.Actor, meta service.RequestMeta, t *model.MaintenanceType) (*model.MaintenanceType, error) {
	args := m.Called(ctx, actor, meta, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceType), args.Error(1)
}

func (m *MockMaintenanceService) GetType(ctx context.Context, id string) (*model.MaintenanceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceType), args.Error(1)
}

func (m *MockMaintenanceService) ListTypes(ctx context.Context, limit, offset int) (*service.MaintenanceTypeListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MaintenanceTypeListResult), args.Error(1)
}

func (m *MockMaintenanceService) CreateRequest(ctx context.Context, actor service.Actor, meta service.RequestMeta, in service.MaintenanceRequestInput) (*model.MaintenanceRequest, error) {
	args := m.Called(ctx, actor, meta, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceService) GetRequest(ctx context.Context, id string) (*model.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceService) ListRequests(ctx context.Context, status string, limit, offset int) (*service.MaintenanceRequestListResult, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MaintenanceRequestListResult), args.Error(1)
}

func (m *MockMaintenanceService) ApproveRequest(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string, assignedTo, vendorID *string, scheduledDate *time.Time) (*model.MaintenanceRequest, error) {
	args := m.Called(ctx, actor, meta, id, assignedTo, vendorID, scheduledDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceService) RejectRequest(ctx context.Context, actor service.Actor, meta service.RequestMeta, id, reason string) (*model.MaintenanceRequest, error) {
	args := m.Called(ctx, actor, meta, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceService) StartRequest(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) (*model.MaintenanceRequest, error) {
	args := m.Called(ctx, actor, meta, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceService) CompleteRequest(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string, in service.CompleteMaintenanceInput) (*model.MaintenanceRequest, error) {
	args := m.Called(ctx, actor, meta, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceService) CancelRequest(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) (*model.MaintenanceRequest, error) {
	args := m.Called(ctx, actor, meta, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceService) CreateSchedule(ctx context.Context, actor service.Actor, meta service.RequestMeta, sch *model.MaintenanceSchedule) (*model.MaintenanceSchedule, error) {
	args := m.Called(ctx, actor, meta, sch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceSchedule), args.Error(1)
}

func (m *MockMaintenanceService) GetSchedule(ctx context.Context, id string) (*model.MaintenanceSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceSchedule), args.Error(1)
}

func (m *MockMaintenanceService) ListSchedules(ctx context.Context, limit, offset int) (*service.MaintenanceScheduleListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MaintenanceScheduleListResult), args.Error(1)
}

func (m *MockMaintenanceService) UpdateSchedule(ctx context.Context, actor service.Actor, meta service.RequestMeta, sch *model.MaintenanceSchedule) (*model.MaintenanceSchedule, error) {
	args := m.Called(ctx, actor, meta, sch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceSchedule), args.Error(1)
}

func (m *MockMaintenanceService) MarkScheduleDone(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) (*model.MaintenanceSchedule, error) {
	args := m.Called(ctx, actor, meta, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaintenanceSchedule), args.Error(1)
}

func (m *MockMaintenanceService) DueSchedules(ctx context.Context, cutoff time.Time) ([]model.MaintenanceSchedule, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MaintenanceSchedule), args.Error(1)
}
