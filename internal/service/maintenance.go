package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"assetz/internal/model"
	"assetz/internal/repository"
)

// MaintenanceRequestInput carries the fields needed to open a ticket.
type MaintenanceRequestInput struct {
	AssetID           string
	MaintenanceTypeID string
	RequestType       string
	Priority          string
	IssueDescription  string
	ImpactDescription string
}

// CompleteMaintenanceInput carries the closing details of a ticket.
type CompleteMaintenanceInput struct {
	ActualCost      *decimal.Decimal
	DowntimeHours   *decimal.Decimal
	ResolutionNotes string
}

// MaintenanceTypeListResult is the service-level DTO for paginated types.
type MaintenanceTypeListResult struct {
	Items []model.MaintenanceType `json:"data"`
	Total int                     `json:"total"`
}

// MaintenanceRequestListResult is the service-level DTO for paginated tickets.
type MaintenanceRequestListResult struct {
	Items []model.MaintenanceRequest `json:"data"`
	Total int                        `json:"total"`
}

// MaintenanceScheduleListResult is the service-level DTO for paginated schedules.
type MaintenanceScheduleListResult struct {
	Items []model.MaintenanceSchedule `json:"data"`
	Total int                         `json:"total"`
}

// MaintenanceService manages maintenance types, request tickets and
// preventive schedules. Starting a ticket moves the asset to
// UNDER_MAINTENANCE; completing it moves the asset back to IN_USE.
type MaintenanceService interface {
	CreateType(ctx context.Context, actor Actor, meta RequestMeta, t *model.MaintenanceType) (*model.MaintenanceType, error)
	GetType(ctx context.Context, id string) (*model.MaintenanceType, error)
	ListTypes(ctx context.Context, limit, offset int) (*MaintenanceTypeListResult, error)

	CreateRequest(ctx context.Context, actor Actor, meta RequestMeta, in MaintenanceRequestInput) (*model.MaintenanceRequest, error)
	GetRequest(ctx context.Context, id string) (*model.MaintenanceRequest, error)
	ListRequests(ctx context.Context, status string, limit, offset int) (*MaintenanceRequestListResult, error)
	ApproveRequest(ctx context.Context, actor Actor, meta RequestMeta, id string, assignedTo, vendorID *string, scheduledDate *time.Time) (*model.MaintenanceRequest, error)
	RejectRequest(ctx context.Context, actor Actor, meta RequestMeta, id, reason string) (*model.MaintenanceRequest, error)
	StartRequest(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.MaintenanceRequest, error)
	CompleteRequest(ctx context.Context, actor Actor, meta RequestMeta, id string, in CompleteMaintenanceInput) (*model.MaintenanceRequest, error)
	CancelRequest(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.MaintenanceRequest, error)

	CreateSchedule(ctx context.Context, actor Actor, meta RequestMeta, sch *model.MaintenanceSchedule) (*model.MaintenanceSchedule, error)
	GetSchedule(ctx context.Context, id string) (*model.MaintenanceSchedule, error)
	ListSchedules(ctx context.Context, limit, offset int) (*MaintenanceScheduleListResult, error)
	UpdateSchedule(ctx context.Context, actor Actor, meta RequestMeta, sch *model.MaintenanceSchedule) (*model.MaintenanceSchedule, error)
	// MarkScheduleDone records a completed occurrence and advances the next due date.
	MarkScheduleDone(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.MaintenanceSchedule, error)
	// DueSchedules returns schedules whose reminder window includes the given day.
	DueSchedules(ctx context.Context, cutoff time.Time) ([]model.MaintenanceSchedule, error)
}

type maintenanceService struct {
	repo   repository.MaintenanceRepository
	assets repository.AssetRepository
	audit  AuditService
}

func NewMaintenanceService(repo repository.MaintenanceRepository, assets repository.AssetRepository, audit AuditService) MaintenanceService {
	return &maintenanceService{repo: repo, assets: assets, audit: audit}
}

func (s *maintenanceService) CreateType(ctx context.Context, actor Actor, meta RequestMeta, t *model.MaintenanceType) (*model.MaintenanceType, error) {
	now := time.Now().UTC()
	t.ID = uuid.New().String()
	t.IsActive = true
	t.CreatedAt = now
	t.UpdatedAt = now
	stored, err := s.repo.CreateType(ctx, t)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditCreate, "maintenance_type", stored.ID, stored.Name, "maintenance type created", nil, stored)
	return stored, nil
}

func (s *maintenanceService) GetType(ctx context.Context, id string) (*model.MaintenanceType, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	t, err := s.repo.FindTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *maintenanceService) ListTypes(ctx context.Context, limit, offset int) (*MaintenanceTypeListResult, error) {
	res, err := s.repo.ListTypes(ctx, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &MaintenanceTypeListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *maintenanceService) CreateRequest(ctx context.Context, actor Actor, meta RequestMeta, in MaintenanceRequestInput) (*model.MaintenanceRequest, error) {
	if _, err := s.assets.FindByID(ctx, in.AssetID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.GetType(ctx, in.MaintenanceTypeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	last, err := s.repo.LastRequestNumber(ctx, "MR"+now.Format("20060102"))
	if err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	r := &model.MaintenanceRequest{
		ID:                uuid.New().String(),
		RequestNumber:     nextRequestNumber(now, last),
		AssetID:           in.AssetID,
		MaintenanceTypeID: in.MaintenanceTypeID,
		RequestType:       in.RequestType,
		Priority:          priority,
		Status:            model.MaintPending,
		RequestedBy:       actorID(actor),
		RequestedDate:     now,
		IssueDescription:  in.IssueDescription,
		ImpactDescription: in.ImpactDescription,
	}
	stored, err := s.repo.CreateRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditCreate, "maintenance_request", stored.ID, stored.RequestNumber, "maintenance requested", nil, stored)
	return stored, nil
}

func (s *maintenanceService) GetRequest(ctx context.Context, id string) (*model.MaintenanceRequest, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	r, err := s.repo.FindRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *maintenanceService) ListRequests(ctx context.Context, status string, limit, offset int) (*MaintenanceRequestListResult, error) {
	res, err := s.repo.ListRequests(ctx, status, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &MaintenanceRequestListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *maintenanceService) ApproveRequest(ctx context.Context, actor Actor, meta RequestMeta, id string, assignedTo, vendorID *string, scheduledDate *time.Time) (*model.MaintenanceRequest, error) {
	if !canApprove(actor) {
		return nil, ErrForbidden
	}
	r, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != model.MaintPending {
		return nil, ErrWorkflowNotPending
	}
	now := time.Now().UTC()
	r.Status = model.MaintApproved
	r.ApprovedBy = actorID(actor)
	r.ApprovedDate = &now
	r.AssignedTo = assignedTo
	r.VendorID = vendorID
	r.ScheduledDate = scheduledDate

	stored, err := s.repo.UpdateRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditApprove, "maintenance_request", stored.ID, stored.RequestNumber, "maintenance approved", nil, stored)
	return stored, nil
}

func (s *maintenanceService) RejectRequest(ctx context.Context, actor Actor, meta RequestMeta, id, reason string) (*model.MaintenanceRequest, error) {
	if !canApprove(actor) {
		return nil, ErrForbidden
	}
	r, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != model.MaintPending {
		return nil, ErrWorkflowNotPending
	}
	r.Status = model.MaintRejected
	r.RejectionReason = reason

	stored, err := s.repo.UpdateRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditReject, "maintenance_request", stored.ID, stored.RequestNumber, "maintenance rejected", nil, stored)
	return stored, nil
}

func (s *maintenanceService) StartRequest(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.MaintenanceRequest, error) {
	r, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != model.MaintApproved {
		return nil, ErrWorkflowNotApproved
	}
	a, err := s.assets.FindByID(ctx, r.AssetID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	oldStatus := a.Status
	a.Status = model.StatusUnderMaintenance
	a.UpdatedAt = now
	if _, err := s.assets.Update(ctx, a); err != nil {
		return nil, err
	}
	_ = s.assets.AppendHistory(ctx, &model.AssetHistory{
		ID:          uuid.New().String(),
		AssetID:     a.ID,
		ActionType:  model.ActionStatusChanged,
		ActionDate:  now,
		PerformedBy: actorID(actor),
		OldValue:    oldStatus,
		NewValue:    model.StatusUnderMaintenance,
		Remarks:     r.RequestNumber,
	})

	r.Status = model.MaintInProgress
	r.StartedDate = &now

	stored, err := s.repo.UpdateRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "maintenance_request", stored.ID, stored.RequestNumber, "maintenance started", nil, stored)
	return stored, nil
}

func (s *maintenanceService) CompleteRequest(ctx context.Context, actor Actor, meta RequestMeta, id string, in CompleteMaintenanceInput) (*model.MaintenanceRequest, error) {
	r, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != model.MaintInProgress && r.Status != model.MaintOnHold {
		return nil, ErrWorkflowNotApproved
	}
	a, err := s.assets.FindByID(ctx, r.AssetID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if a.Status == model.StatusUnderMaintenance {
		a.Status = model.StatusInUse
		a.UpdatedAt = now
		if _, err := s.assets.Update(ctx, a); err != nil {
			return nil, err
		}
		_ = s.assets.AppendHistory(ctx, &model.AssetHistory{
			ID:          uuid.New().String(),
			AssetID:     a.ID,
			ActionType:  model.ActionStatusChanged,
			ActionDate:  now,
			PerformedBy: actorID(actor),
			OldValue:    model.StatusUnderMaintenance,
			NewValue:    model.StatusInUse,
			Remarks:     r.RequestNumber,
		})
	}

	r.Status = model.MaintCompleted
	r.CompletedDate = &now
	r.ActualCost = in.ActualCost
	r.DowntimeHours = in.DowntimeHours
	r.ResolutionNotes = in.ResolutionNotes

	stored, err := s.repo.UpdateRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "maintenance_request", stored.ID, stored.RequestNumber, "maintenance completed", nil, stored)
	return stored, nil
}

func (s *maintenanceService) CancelRequest(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.MaintenanceRequest, error) {
	r, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	switch r.Status {
	case model.MaintPending, model.MaintApproved, model.MaintOnHold:
	default:
		return nil, ErrWorkflowFinal
	}
	r.Status = model.MaintCancelled

	stored, err := s.repo.UpdateRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "maintenance_request", stored.ID, stored.RequestNumber, "maintenance cancelled", nil, stored)
	return stored, nil
}

func (s *maintenanceService) CreateSchedule(ctx context.Context, actor Actor, meta RequestMeta, sch *model.MaintenanceSchedule) (*model.MaintenanceSchedule, error) {
	if _, err := s.assets.FindByID(ctx, sch.AssetID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if sch.NextInterval() <= 0 {
		return nil, ErrInvalidStatus
	}

	now := time.Now().UTC()
	sch.ID = uuid.New().String()
	sch.IsActive = true
	sch.CreatedAt = now
	sch.UpdatedAt = now
	if sch.NextDueDate.IsZero() {
		sch.NextDueDate = sch.StartDate.AddDate(0, 0, sch.NextInterval())
	}

	stored, err := s.repo.CreateSchedule(ctx, sch)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditCreate, "maintenance_schedule", stored.ID, stored.AssetID, "schedule created", nil, stored)
	return stored, nil
}

func (s *maintenanceService) GetSchedule(ctx context.Context, id string) (*model.MaintenanceSchedule, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	sch, err := s.repo.FindScheduleByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sch, nil
}

func (s *maintenanceService) ListSchedules(ctx context.Context, limit, offset int) (*MaintenanceScheduleListResult, error) {
	res, err := s.repo.ListSchedules(ctx, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &MaintenanceScheduleListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *maintenanceService) UpdateSchedule(ctx context.Context, actor Actor, meta RequestMeta, sch *model.MaintenanceSchedule) (*model.MaintenanceSchedule, error) {
	before, err := s.GetSchedule(ctx, sch.ID)
	if err != nil {
		return nil, err
	}
	sch.CreatedAt = before.CreatedAt
	sch.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.UpdateSchedule(ctx, sch)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "maintenance_schedule", stored.ID, stored.AssetID, "schedule updated", before, stored)
	return stored, nil
}

func (s *maintenanceService) MarkScheduleDone(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.MaintenanceSchedule, error) {
	sch, err := s.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	sch.LastCompletedDate = &now
	sch.NextDueDate = now.AddDate(0, 0, sch.NextInterval())
	sch.UpdatedAt = now

	stored, err := s.repo.UpdateSchedule(ctx, sch)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "maintenance_schedule", stored.ID, stored.AssetID, "schedule occurrence completed", nil, stored)
	return stored, nil
}

func (s *maintenanceService) DueSchedules(ctx context.Context, cutoff time.Time) ([]model.MaintenanceSchedule, error) {
	return s.repo.DueSchedules(ctx, cutoff)
}
