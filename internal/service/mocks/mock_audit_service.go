package mocks

import (
	"context"

	"assetz/internal/repository"
	"assetz/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, actor service.Actor, meta service.RequestMeta, action, entityType, entityID, objectRepr, description string, oldValues, newValues any) error {
	args := m.Called(ctx, actor, meta, action, entityType, entityID, objectRepr, description, oldValues, newValues)
	return args.Error(0)
}

func (m *MockAuditService) List(ctx context.Context, f repository.AuditFilter, limit, offset int) (*service.AuditListResult, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuditListResult), args.Error(1)
}
