package repository

import (
	"context"
	"time"

	"assetz/internal/model"
)

// AuditFilter narrows audit log queries. Zero values mean "no filter".
type AuditFilter struct {
	UserID     string
	EntityType string
	EntityID   string
	Action     string
	From       time.Time
	To         time.Time
}

// AuditRepository defines data access for the audit trail. Inserts only;
// audit rows are never updated or deleted by the application.
type AuditRepository interface {
	Insert(ctx context.Context, e *model.AuditLog) error
	List(ctx context.Context, f AuditFilter, pq PageQuery) (*PageResult[model.AuditLog], error)
}
