package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"assetz/internal/model"
	"assetz/internal/repository"
)

// MaintenancePostgres is a PostgreSQL implementation of repository.MaintenanceRepository.
type MaintenancePostgres struct {
	db *sql.DB
}

// NewMaintenancePostgres creates a new MaintenancePostgres repository.
func NewMaintenancePostgres(db *sql.DB) *MaintenancePostgres {
	return &MaintenancePostgres{db: db}
}

var _ repository.MaintenanceRepository = (*MaintenancePostgres)(nil)

const maintTypeColumns = `id, name, code, description, is_active, created_at, updated_at`

func scanMaintType(row interface{ Scan(...any) error }) (*model.MaintenanceType, error) {
	var t model.MaintenanceType
	if err := row.Scan(&t.ID, &t.Name, &t.Code, &t.Description, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *MaintenancePostgres) CreateType(ctx context.Context, t *model.MaintenanceType) (*model.MaintenanceType, error) {
	const q = `
		INSERT INTO maintenance_types (id, name, code, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING ` + maintTypeColumns
	return scanMaintType(r.db.QueryRowContext(ctx, q, t.ID, t.Name, t.Code, t.Description, t.IsActive, t.CreatedAt))
}

func (r *MaintenancePostgres) FindTypeByID(ctx context.Context, id string) (*model.MaintenanceType, error) {
	const q = `SELECT ` + maintTypeColumns + ` FROM maintenance_types WHERE id = $1 AND deleted_at IS NULL`
	return scanMaintType(r.db.QueryRowContext(ctx, q, id))
}

func (r *MaintenancePostgres) ListTypes(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.MaintenanceType], error) {
	const qCount = `SELECT COUNT(*) FROM maintenance_types WHERE deleted_at IS NULL`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + maintTypeColumns + `
		FROM maintenance_types WHERE deleted_at IS NULL ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MaintenanceType, 0)
	for rows.Next() {
		t, err := scanMaintType(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.MaintenanceType]{Items: items, Total: total}, nil
}

const maintRequestColumns = `id, request_number, asset_id, maintenance_type_id, request_type,
	priority, status, requested_by, requested_date, issue_description, impact_description,
	approved_by, approved_date, assigned_to, vendor_id, scheduled_date, started_date,
	completed_date, estimated_cost, actual_cost, downtime_hours, resolution_notes,
	rejection_reason`

func scanMaintRequest(row interface{ Scan(...any) error }) (*model.MaintenanceRequest, error) {
	var m model.MaintenanceRequest
	if err := row.Scan(
		&m.ID, &m.RequestNumber, &m.AssetID, &m.MaintenanceTypeID, &m.RequestType,
		&m.Priority, &m.Status, &m.RequestedBy, &m.RequestedDate, &m.IssueDescription,
		&m.ImpactDescription, &m.ApprovedBy, &m.ApprovedDate, &m.AssignedTo, &m.VendorID,
		&m.ScheduledDate, &m.StartedDate, &m.CompletedDate, &m.EstimatedCost, &m.ActualCost,
		&m.DowntimeHours, &m.ResolutionNotes, &m.RejectionReason,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MaintenancePostgres) CreateRequest(ctx context.Context, m *model.MaintenanceRequest) (*model.MaintenanceRequest, error) {
	const q = `
		INSERT INTO maintenance_requests (id, request_number, asset_id, maintenance_type_id,
			request_type, priority, status, requested_by, requested_date, issue_description,
			impact_description, assigned_to, vendor_id, scheduled_date, estimated_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + maintRequestColumns
	row := r.db.QueryRowContext(ctx, q,
		m.ID, m.RequestNumber, m.AssetID, m.MaintenanceTypeID, m.RequestType, m.Priority,
		m.Status, m.RequestedBy, m.RequestedDate, m.IssueDescription, m.ImpactDescription,
		m.AssignedTo, m.VendorID, m.ScheduledDate, m.EstimatedCost,
	)
	return scanMaintRequest(row)
}

func (r *MaintenancePostgres) FindRequestByID(ctx context.Context, id string) (*model.MaintenanceRequest, error) {
	const q = `SELECT ` + maintRequestColumns + ` FROM maintenance_requests WHERE id = $1`
	return scanMaintRequest(r.db.QueryRowContext(ctx, q, id))
}

func (r *MaintenancePostgres) ListRequests(ctx context.Context, status string, pq repository.PageQuery) (*repository.PageResult[model.MaintenanceRequest], error) {
	const qCount = `SELECT COUNT(*) FROM maintenance_requests WHERE ($1 = '' OR status = $1)`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, status).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + maintRequestColumns + `
		FROM maintenance_requests
		WHERE ($1 = '' OR status = $1)
		ORDER BY requested_date DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, qList, status, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MaintenanceRequest, 0)
	for rows.Next() {
		m, err := scanMaintRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.MaintenanceRequest]{Items: items, Total: total}, nil
}

func (r *MaintenancePostgres) UpdateRequest(ctx context.Context, m *model.MaintenanceRequest) (*model.MaintenanceRequest, error) {
	const q = `
		UPDATE maintenance_requests
		SET status = $2, approved_by = $3, approved_date = $4, assigned_to = $5,
			vendor_id = $6, scheduled_date = $7, started_date = $8, completed_date = $9,
			estimated_cost = $10, actual_cost = $11, downtime_hours = $12,
			resolution_notes = $13, rejection_reason = $14
		WHERE id = $1
		RETURNING ` + maintRequestColumns
	row := r.db.QueryRowContext(ctx, q,
		m.ID, m.Status, m.ApprovedBy, m.ApprovedDate, m.AssignedTo, m.VendorID,
		m.ScheduledDate, m.StartedDate, m.CompletedDate, m.EstimatedCost, m.ActualCost,
		m.DowntimeHours, m.ResolutionNotes, m.RejectionReason,
	)
	return scanMaintRequest(row)
}

// LastRequestNumber returns the highest request number with the given prefix, or "" when none exists.
func (r *MaintenancePostgres) LastRequestNumber(ctx context.Context, prefix string) (string, error) {
	const q = `
		SELECT request_number FROM maintenance_requests
		WHERE request_number LIKE $1 || '%'
		ORDER BY request_number DESC
		LIMIT 1`
	var n string
	err := r.db.QueryRowContext(ctx, q, prefix).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return n, err
}

const scheduleColumns = `id, asset_id, maintenance_type_id, frequency, interval_days,
	start_date, next_due_date, last_completed_date, assigned_to, vendor_id, estimated_cost,
	is_active, send_reminder, reminder_days_before, created_at, updated_at`

func scanSchedule(row interface{ Scan(...any) error }) (*model.MaintenanceSchedule, error) {
	var s model.MaintenanceSchedule
	if err := row.Scan(
		&s.ID, &s.AssetID, &s.MaintenanceTypeID, &s.Frequency, &s.IntervalDays,
		&s.StartDate, &s.NextDueDate, &s.LastCompletedDate, &s.AssignedTo, &s.VendorID,
		&s.EstimatedCost, &s.IsActive, &s.SendReminder, &s.ReminderDaysBefore,
		&s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MaintenancePostgres) CreateSchedule(ctx context.Context, s *model.MaintenanceSchedule) (*model.MaintenanceSchedule, error) {
	const q = `
		INSERT INTO maintenance_schedules (id, asset_id, maintenance_type_id, frequency,
			interval_days, start_date, next_due_date, assigned_to, vendor_id,
			estimated_cost, is_active, send_reminder, reminder_days_before, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING ` + scheduleColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID, s.AssetID, s.MaintenanceTypeID, s.Frequency, s.IntervalDays, s.StartDate,
		s.NextDueDate, s.AssignedTo, s.VendorID, s.EstimatedCost, s.IsActive,
		s.SendReminder, s.ReminderDaysBefore, s.CreatedAt,
	)
	return scanSchedule(row)
}

func (r *MaintenancePostgres) FindScheduleByID(ctx context.Context, id string) (*model.MaintenanceSchedule, error) {
	const q = `SELECT ` + scheduleColumns + ` FROM maintenance_schedules WHERE id = $1`
	return scanSchedule(r.db.QueryRowContext(ctx, q, id))
}

func (r *MaintenancePostgres) ListSchedules(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.MaintenanceSchedule], error) {
	const qCount = `SELECT COUNT(*) FROM maintenance_schedules`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + scheduleColumns + `
		FROM maintenance_schedules ORDER BY next_due_date LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MaintenanceSchedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.MaintenanceSchedule]{Items: items, Total: total}, nil
}

func (r *MaintenancePostgres) UpdateSchedule(ctx context.Context, s *model.MaintenanceSchedule) (*model.MaintenanceSchedule, error) {
	const q = `
		UPDATE maintenance_schedules
		SET frequency = $2, interval_days = $3, next_due_date = $4, last_completed_date = $5,
			assigned_to = $6, vendor_id = $7, estimated_cost = $8, is_active = $9,
			send_reminder = $10, reminder_days_before = $11, updated_at = now()
		WHERE id = $1
		RETURNING ` + scheduleColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID, s.Frequency, s.IntervalDays, s.NextDueDate, s.LastCompletedDate,
		s.AssignedTo, s.VendorID, s.EstimatedCost, s.IsActive, s.SendReminder,
		s.ReminderDaysBefore,
	)
	return scanSchedule(row)
}

// DueSchedules returns active schedules with reminders enabled whose due date,
// less the per-schedule reminder window, falls on or before the cutoff.
func (r *MaintenancePostgres) DueSchedules(ctx context.Context, cutoff time.Time) ([]model.MaintenanceSchedule, error) {
	const q = `
		SELECT ` + scheduleColumns + `
		FROM maintenance_schedules
		WHERE is_active AND send_reminder
			AND next_due_date - (reminder_days_before * INTERVAL '1 day') <= $1
		ORDER BY next_due_date`
	rows, err := r.db.QueryContext(ctx, q, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MaintenanceSchedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	return items, rows.Err()
}
