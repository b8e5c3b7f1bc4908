package repository

import (
	"context"
	"time"

	"assetz/internal/model"
)

// MaintenanceRepository defines data access for maintenance types, requests
// and preventive schedules.
type MaintenanceRepository interface {
	CreateType(ctx context.Context, t *model.MaintenanceType) (*model.MaintenanceType, error)
	FindTypeByID(ctx context.Context, id string) (*model.MaintenanceType, error)
	ListTypes(ctx context.Context, pq PageQuery) (*PageResult[model.MaintenanceType], error)

	CreateRequest(ctx context.Context, r *model.MaintenanceRequest) (*model.MaintenanceRequest, error)
	FindRequestByID(ctx context.Context, id string) (*model.MaintenanceRequest, error)
	ListRequests(ctx context.Context, status string, pq PageQuery) (*PageResult[model.MaintenanceRequest], error)
	UpdateRequest(ctx context.Context, r *model.MaintenanceRequest) (*model.MaintenanceRequest, error)
	// LastRequestNumber returns the highest request number matching the prefix, or "" when none exists.
	LastRequestNumber(ctx context.Context, prefix string) (string, error)

	CreateSchedule(ctx context.Context, s *model.MaintenanceSchedule) (*model.MaintenanceSchedule, error)
	FindScheduleByID(ctx context.Context, id string) (*model.MaintenanceSchedule, error)
	ListSchedules(ctx context.Context, pq PageQuery) (*PageResult[model.MaintenanceSchedule], error)
	UpdateSchedule(ctx context.Context, s *model.MaintenanceSchedule) (*model.MaintenanceSchedule, error)
	// DueSchedules returns active schedules with reminders enabled whose due date
	// falls on or before the cutoff.
	DueSchedules(ctx context.Context, cutoff time.Time) ([]model.MaintenanceSchedule, error)
}
