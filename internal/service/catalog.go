package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"assetz/internal/model"
	"assetz/internal/repository"
)

// CategoryListResult is the service-level DTO for paginated categories.
type CategoryListResult struct {
	Items []model.Category `json:"data"`
	Total int              `json:"total"`
}

// VendorListResult is the service-level DTO for paginated vendors.
type VendorListResult struct {
	Items []model.Vendor `json:"data"`
	Total int            `json:"total"`
}

// CatalogService manages asset categories and vendors.
type CatalogService interface {
	CreateCategory(ctx context.Context, actor Actor, meta RequestMeta, c *model.Category) (*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context, limit, offset int) (*CategoryListResult, error)
	UpdateCategory(ctx context.Context, actor Actor, meta RequestMeta, c *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, actor Actor, meta RequestMeta, id string) error

	CreateVendor(ctx context.Context, actor Actor, meta RequestMeta, v *model.Vendor) (*model.Vendor, error)
	GetVendor(ctx context.Context, id string) (*model.Vendor, error)
	ListVendors(ctx context.Context, limit, offset int) (*VendorListResult, error)
	UpdateVendor(ctx context.Context, actor Actor, meta RequestMeta, v *model.Vendor) (*model.Vendor, error)
	DeleteVendor(ctx context.Context, actor Actor, meta RequestMeta, id string) error
}

type catalogService struct {
	categories repository.CategoryRepository
	vendors    repository.VendorRepository
	audit      AuditService
}

func NewCatalogService(categories repository.CategoryRepository, vendors repository.VendorRepository, audit AuditService) CatalogService {
	return &catalogService{categories: categories, vendors: vendors, audit: audit}
}

func (s *catalogService) CreateCategory(ctx context.Context, actor Actor, meta RequestMeta, c *model.Category) (*model.Category, error) {
	now := time.Now().UTC()
	c.ID = uuid.New().String()
	c.IsActive = true
	c.CreatedAt = now
	c.UpdatedAt = now
	stored, err := s.categories.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditCreate, "category", stored.ID, stored.Name, "category created", nil, stored)
	return stored, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *catalogService) ListCategories(ctx context.Context, limit, offset int) (*CategoryListResult, error) {
	res, err := s.categories.List(ctx, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &CategoryListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, actor Actor, meta RequestMeta, c *model.Category) (*model.Category, error) {
	before, err := s.GetCategory(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now().UTC()
	stored, err := s.categories.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "category", stored.ID, stored.Name, "category updated", before, stored)
	return stored, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, actor Actor, meta RequestMeta, id string) error {
	c, err := s.GetCategory(ctx, id)
	if err != nil {
		return err
	}
	if err := s.categories.SoftDelete(ctx, id); err != nil {
		return err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditDelete, "category", c.ID, c.Name, "category deleted", c, nil)
	return nil
}

func (s *catalogService) CreateVendor(ctx context.Context, actor Actor, meta RequestMeta, v *model.Vendor) (*model.Vendor, error) {
	now := time.Now().UTC()
	v.ID = uuid.New().String()
	v.IsActive = true
	v.CreatedAt = now
	v.UpdatedAt = now
	if v.VendorType == "" {
		v.VendorType = model.VendorSupplier
	}
	stored, err := s.vendors.Create(ctx, v)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditCreate, "vendor", stored.ID, stored.Name, "vendor created", nil, stored)
	return stored, nil
}

func (s *catalogService) GetVendor(ctx context.Context, id string) (*model.Vendor, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	v, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *catalogService) ListVendors(ctx context.Context, limit, offset int) (*VendorListResult, error) {
	res, err := s.vendors.List(ctx, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &VendorListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *catalogService) UpdateVendor(ctx context.Context, actor Actor, meta RequestMeta, v *model.Vendor) (*model.Vendor, error) {
	before, err := s.GetVendor(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	v.UpdatedAt = time.Now().UTC()
	stored, err := s.vendors.Update(ctx, v)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "vendor", stored.ID, stored.Name, "vendor updated", before, stored)
	return stored, nil
}

func (s *catalogService) DeleteVendor(ctx context.Context, actor Actor, meta RequestMeta, id string) error {
	v, err := s.GetVendor(ctx, id)
	if err != nil {
		return err
	}
	if err := s.vendors.SoftDelete(ctx, id); err != nil {
		return err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditDelete, "vendor", v.ID, v.Name, "vendor deleted", v, nil)
	return nil
}
