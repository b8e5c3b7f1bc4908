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

// LocationListResult is the service-level DTO for paginated locations.
type LocationListResult struct {
	Items []model.Location `json:"data"`
	Total int              `json:"total"`
}

// DepartmentListResult is the service-level DTO for paginated departments.
type DepartmentListResult struct {
	Items []model.Department `json:"data"`
	Total int                `json:"total"`
}

// OrgService manages locations and departments.
type OrgService interface {
	CreateLocation(ctx context.Context, actor Actor, meta RequestMeta, l *model.Location) (*model.Location, error)
	GetLocation(ctx context.Context, id string) (*model.Location, error)
	ListLocations(ctx context.Context, limit, offset int) (*LocationListResult, error)
	UpdateLocation(ctx context.Context, actor Actor, meta RequestMeta, l *model.Location) (*model.Location, error)
	DeleteLocation(ctx context.Context, actor Actor, meta RequestMeta, id string) error

	CreateDepartment(ctx context.Context, actor Actor, meta RequestMeta, d *model.Department) (*model.Department, error)
	GetDepartment(ctx context.Context, id string) (*model.Department, error)
	ListDepartments(ctx context.Context, limit, offset int) (*DepartmentListResult, error)
	UpdateDepartment(ctx context.Context, actor Actor, meta RequestMeta, d *model.Department) (*model.Department, error)
	DeleteDepartment(ctx context.Context, actor Actor, meta RequestMeta, id string) error
}

type orgService struct {
	locations   repository.LocationRepository
	departments repository.DepartmentRepository
	audit       AuditService
}

func NewOrgService(locations repository.LocationRepository, departments repository.DepartmentRepository, audit AuditService) OrgService {
	return &orgService{locations: locations, departments: departments, audit: audit}
}

func (s *orgService) CreateLocation(ctx context.Context, actor Actor, meta RequestMeta, l *model.Location) (*model.Location, error) {
	now := time.Now().UTC()
	l.ID = uuid.New().String()
	l.IsActive = true
	l.CreatedAt = now
	l.UpdatedAt = now
	if l.LocationType == "" {
		l.LocationType = model.LocationOffice
	}
	stored, err := s.locations.Create(ctx, l)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditCreate, "location", stored.ID, stored.Name, "location created", nil, stored)
	return stored, nil
}

func (s *orgService) GetLocation(ctx context.Context, id string) (*model.Location, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	l, err := s.locations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (s *orgService) ListLocations(ctx context.Context, limit, offset int) (*LocationListResult, error) {
	res, err := s.locations.List(ctx, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &LocationListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *orgService) UpdateLocation(ctx context.Context, actor Actor, meta RequestMeta, l *model.Location) (*model.Location, error) {
	before, err := s.GetLocation(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	l.UpdatedAt = time.Now().UTC()
	stored, err := s.locations.Update(ctx, l)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "location", stored.ID, stored.Name, "location updated", before, stored)
	return stored, nil
}

func (s *orgService) DeleteLocation(ctx context.Context, actor Actor, meta RequestMeta, id string) error {
	l, err := s.GetLocation(ctx, id)
	if err != nil {
		return err
	}
	if err := s.locations.SoftDelete(ctx, id); err != nil {
		return err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditDelete, "location", l.ID, l.Name, "location deleted", l, nil)
	return nil
}

func (s *orgService) CreateDepartment(ctx context.Context, actor Actor, meta RequestMeta, d *model.Department) (*model.Department, error) {
	now := time.Now().UTC()
	d.ID = uuid.New().String()
	d.IsActive = true
	d.CreatedAt = now
	d.UpdatedAt = now
	stored, err := s.departments.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditCreate, "department", stored.ID, stored.Name, "department created", nil, stored)
	return stored, nil
}

func (s *orgService) GetDepartment(ctx context.Context, id string) (*model.Department, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	d, err := s.departments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *orgService) ListDepartments(ctx context.Context, limit, offset int) (*DepartmentListResult, error) {
	res, err := s.departments.List(ctx, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &DepartmentListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *orgService) UpdateDepartment(ctx context.Context, actor Actor, meta RequestMeta, d *model.Department) (*model.Department, error) {
	before, err := s.GetDepartment(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	d.UpdatedAt = time.Now().UTC()
	stored, err := s.departments.Update(ctx, d)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "department", stored.ID, stored.Name, "department updated", before, stored)
	return stored, nil
}

func (s *orgService) DeleteDepartment(ctx context.Context, actor Actor, meta RequestMeta, id string) error {
	d, err := s.GetDepartment(ctx, id)
	if err != nil {
		return err
	}
	if err := s.departments.SoftDelete(ctx, id); err != nil {
		return err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditDelete, "department", d.ID, d.Name, "department deleted", d, nil)
	return nil
}

// pageQuery normalizes limit/offset the same way across every service.
func pageQuery(limit, offset int) repository.PageQuery {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}
