package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"assetz/internal/model"
	"assetz/internal/repository"
)

// Actor identifies the authenticated user performing an operation.
type Actor struct {
	ID             string
	Username       string
	IsCompanyAdmin bool
	IsApprover     bool
	IsCustodian    bool
}

// RequestMeta carries request attributes recorded alongside audit entries.
type RequestMeta struct {
	IPAddress string
	UserAgent string
	Path      string
	Method    string
}

// AuditListResult is the service-level DTO for paginated audit entries.
type AuditListResult struct {
	Items []model.AuditLog `json:"data"`
	Total int              `json:"total"`
}

// AuditService records and queries the audit trail.
type AuditService interface {
	// Record appends one audit entry. oldValues/newValues are marshalled to
	// JSON; nil values produce empty columns. Failures are returned but callers
	// generally treat recording as best-effort.
	Record(ctx context.Context, actor Actor, meta RequestMeta, action, entityType, entityID, objectRepr, description string, oldValues, newValues any) error

	List(ctx context.Context, f repository.AuditFilter, limit, offset int) (*AuditListResult, error)
}

type auditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Record(ctx context.Context, actor Actor, meta RequestMeta, action, entityType, entityID, objectRepr, description string, oldValues, newValues any) error {
	e := &model.AuditLog{
		ID:            uuid.New().String(),
		Username:      actor.Username,
		EntityType:    entityType,
		EntityID:      entityID,
		ObjectRepr:    objectRepr,
		Action:        action,
		Description:   description,
		IPAddress:     meta.IPAddress,
		UserAgent:     meta.UserAgent,
		RequestPath:   meta.Path,
		RequestMethod: meta.Method,
		Timestamp:     time.Now().UTC(),
	}
	if actor.ID != "" {
		id := actor.ID
		e.UserID = &id
	}
	if oldValues != nil {
		if b, err := json.Marshal(oldValues); err == nil {
			e.OldValues = string(b)
		}
	}
	if newValues != nil {
		if b, err := json.Marshal(newValues); err == nil {
			e.NewValues = string(b)
		}
	}
	return s.repo.Insert(ctx, e)
}

func (s *auditService) List(ctx context.Context, f repository.AuditFilter, limit, offset int) (*AuditListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, f, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &AuditListResult{Items: res.Items, Total: res.Total}, nil
}
