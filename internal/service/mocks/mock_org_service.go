package mocks

import (
	"context"

	"assetz/internal/model"
	"assetz/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockOrgService struct {
	mock.Mock
}

func (m *MockOrgService) CreateLocation(ctx context.Context, actor service.Actor, meta service.RequestMeta, l *model.Location) (*model.Location, error) {
	args := m.Called(ctx, actor, meta, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockOrgService) GetLocation(ctx context.Context, id string) (*model.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockOrgService) ListLocations(ctx context.Context, limit, offset int) (*service.LocationListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LocationListResult), args.Error(1)
}

func (m *MockOrgService) UpdateLocation(ctx context.Context, actor service.Actor, meta service.RequestMeta, l *model.Location) (*model.Location, error) {
	args := m.Called(ctx, actor, meta, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockOrgService) DeleteLocation(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) error {
	args := m.Called(ctx, actor, meta, id)
	return args.Error(0)
}

func (m *MockOrgService) CreateDepartment(ctx context.Context, actor service.Actor, meta service.RequestMeta, d *model.Department) (*model.Department, error) {
	args := m.Called(ctx, actor, meta, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Department), args.Error(1)
}

func (m *MockOrgService) GetDepartment(ctx context.Context, id string) (*model.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Department), args.Error(1)
}

func (m *MockOrgService) ListDepartments(ctx context.Context, limit, offset int) (*service.DepartmentListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DepartmentListResult), args.Error(1)
}

func (m *MockOrgService) UpdateDepartment(ctx context.Context, actor service.Actor, meta service.RequestMeta, d *model.Department) (*model.Department, error) {
	args := m.Called(ctx, actor, meta, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Department), args.Error(1)
}

func (m *MockOrgService) DeleteDepartment(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) error {
	args := m.Called(ctx, actor, meta, id)
	return args.Error(0)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateCategory(ctx context.Context, actor service.Actor, meta service.RequestMeta, c *model.Category) (*model.Category, error) {
	args := m.Called(ctx, actor, meta, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCatalogService) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCatalogService) ListCategories(ctx context.Context, limit, offset int) (*service.CategoryListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CategoryListResult), args.Error(1)
}

func (m *MockCatalogService) UpdateCategory(ctx context.Context, actor service.Actor, meta service.RequestMeta, c *model.Category) (*model.Category, error) {
	args := m.Called(ctx, actor, meta, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCatalogService) DeleteCategory(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) error {
	args := m.Called(ctx, actor, meta, id)
	return args.Error(0)
}

func (m *MockCatalogService) CreateVendor(ctx context.Context, actor service.Actor, meta service.RequestMeta, v *model.Vendor) (*model.Vendor, error) {
	args := m.Called(ctx, actor, meta, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockCatalogService) GetVendor(ctx context.Context, id string) (*model.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockCatalogService) ListVendors(ctx context.Context, limit, offset int) (*service.VendorListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VendorListResult), args.Error(1)
}

func (m *MockCatalogService) UpdateVendor(ctx context.Context, actor service.Actor, meta service.RequestMeta, v *model.Vendor) (*model.Vendor, error) {
	args := m.Called(ctx, actor, meta, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockCatalogService) DeleteVendor(ctx context.Context, actor service.Actor, meta service.RequestMeta, id string) error {
	args := m.Called(ctx, actor, meta, id)
	return args.Error(0)
}
