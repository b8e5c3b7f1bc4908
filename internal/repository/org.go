package repository

import (
	"context"

	"assetz/internal/model"
)

// LocationRepository defines data access for locations.
type LocationRepository interface {
	Create(ctx context.Context, l *model.Location) (*model.Location, error)
	FindByID(ctx context.Context, id string) (*model.Location, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Location], error)
	Update(ctx context.Context, l *model.Location) (*model.Location, error)
	SoftDelete(ctx context.Context, id string) error
}

// DepartmentRepository defines data access for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, d *model.Department) (*model.Department, error)
	FindByID(ctx context.Context, id string) (*model.Department, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Department], error)
	Update(ctx context.Context, d *model.Department) (*model.Department, error)
	SoftDelete(ctx context.Context, id string) error
}

// CategoryRepository defines data access for asset categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) (*model.Category, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Category], error)
	Update(ctx context.Context, c *model.Category) (*model.Category, error)
	SoftDelete(ctx context.Context, id string) error
}

// VendorRepository defines data access for vendors.
type VendorRepository interface {
	Create(ctx context.Context, v *model.Vendor) (*model.Vendor, error)
	FindByID(ctx context.Context, id string) (*model.Vendor, error)
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Vendor], error)
	Update(ctx context.Context, v *model.Vendor) (*model.Vendor, error)
	SoftDelete(ctx context.Context, id string) error
}
