package mocks

import (
	"context"

	"assetz/internal/model"
	"assetz/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, actor service.Actor, meta service.RequestMeta, in service.RegisterUserInput) (*model.User, error) {
	args := m.Called(ctx, actor, meta, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, meta service.RequestMeta, username, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, meta, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, limit, offset int) (*service.UserListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserListResult), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string, in service.UpdateUserInput) (*model.User, error) {
	args := m.Called(ctx, actor, meta, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Deactivate(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) error {
	args := m.Called(ctx, actor, meta, id)
	return args.Error(0)
}
