package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"assetz/internal/model"
	"assetz/internal/repository"
)

// AuditPostgres is a PostgreSQL implementation of repository.AuditRepository.
type AuditPostgres struct {
	db *sql.DB
}

// NewAuditPostgres creates a new AuditPostgres repository.
func NewAuditPostgres(db *sql.DB) *AuditPostgres {
	return &AuditPostgres{db: db}
}

var _ repository.AuditRepository = (*AuditPostgres)(nil)

const auditColumns = `id, user_id, username, entity_type, entity_id, object_repr, action,
	description, old_values, new_values, ip_address, user_agent, request_path,
	request_method, timestamp`

// Insert appends one audit entry. Audit rows are never updated or deleted.
func (r *AuditPostgres) Insert(ctx context.Context, e *model.AuditLog) error {
	const q = `
		INSERT INTO audit_logs (id, user_id, username, entity_type, entity_id, object_repr,
			action, description, old_values, new_values, ip_address, user_agent,
			request_path, request_method, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.ExecContext(ctx, q,
		e.ID, e.UserID, e.Username, e.EntityType, e.EntityID, e.ObjectRepr, e.Action,
		e.Description, e.OldValues, e.NewValues, e.IPAddress, e.UserAgent, e.RequestPath,
		e.RequestMethod, e.Timestamp,
	)
	return err
}

// List returns audit entries matching the filter, newest first.
func (r *AuditPostgres) List(ctx context.Context, f repository.AuditFilter, pq repository.PageQuery) (*repository.PageResult[model.AuditLog], error) {
	where := []string{"TRUE"}
	args := []any{}

	add := func(cond string, val any) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.UserID != "" {
		add("user_id = $%d", f.UserID)
	}
	if f.EntityType != "" {
		add("entity_type = $%d", f.EntityType)
	}
	if f.EntityID != "" {
		add("entity_id = $%d", f.EntityID)
	}
	if f.Action != "" {
		add("action = $%d", f.Action)
	}
	if !f.From.IsZero() {
		add("timestamp >= $%d", f.From)
	}
	if !f.To.IsZero() {
		add("timestamp <= $%d", f.To)
	}
	cond := strings.Join(where, " AND ")

	qCount := `SELECT COUNT(*) FROM audit_logs WHERE ` + cond
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := `SELECT ` + auditColumns + ` FROM audit_logs WHERE ` + cond +
		fmt.Sprintf(" ORDER BY timestamp DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, qList, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AuditLog, 0)
	for rows.Next() {
		var e model.AuditLog
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Username, &e.EntityType, &e.EntityID, &e.ObjectRepr,
			&e.Action, &e.Description, &e.OldValues, &e.NewValues, &e.IPAddress,
			&e.UserAgent, &e.RequestPath, &e.RequestMethod, &e.Timestamp,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.AuditLog]{Items: items, Total: total}, nil
}
