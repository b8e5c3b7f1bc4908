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

// Workflow number prefixes.
const (
	transferPrefix = "TRF"
	disposalPrefix = "DSP"
)

// TransferInput carries the fields needed to open a transfer request.
type TransferInput struct {
	AssetID        string
	ToUserID       *string
	ToLocationID   *string
	ToDepartmentID *string
	Reason         string
}

// DisposalInput carries the fields needed to open a disposal request.
type DisposalInput struct {
	AssetID        string
	DisposalMethod string
	Reason         string
	DisposalValue  decimal.Decimal
	DisposalCost   decimal.Decimal
	BuyerDetails   string
}

// TransferListResult is the service-level DTO for paginated transfers.
type TransferListResult struct {
	Items []model.AssetTransfer `json:"data"`
	Total int                   `json:"total"`
}

// DisposalListResult is the service-level DTO for paginated disposals.
type DisposalListResult struct {
	Items []model.AssetDisposal `json:"data"`
	Total int                   `json:"total"`
}

// WorkflowService runs the transfer and disposal approval workflows. Requests
// move PENDING -> APPROVED/REJECTED -> COMPLETED; pending requests can be
// cancelled by anyone allowed to see them.
type WorkflowService interface {
	RequestTransfer(ctx context.Context, actor Actor, meta RequestMeta, in TransferInput) (*model.AssetTransfer, error)
	GetTransfer(ctx context.Context, id string) (*model.AssetTransfer, error)
	ListTransfers(ctx context.Context, status string, limit, offset int) (*TransferListResult, error)
	ApproveTransfer(ctx context.Context, actor Actor, meta RequestMeta, id, remarks string) (*model.AssetTransfer, error)
	RejectTransfer(ctx context.Context, actor Actor, meta RequestMeta, id, remarks string) (*model.AssetTransfer, error)
	// CompleteTransfer applies an approved transfer to the asset.
	CompleteTransfer(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.AssetTransfer, error)
	CancelTransfer(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.AssetTransfer, error)

	RequestDisposal(ctx context.Context, actor Actor, meta RequestMeta, in DisposalInput) (*model.AssetDisposal, error)
	GetDisposal(ctx context.Context, id string) (*model.AssetDisposal, error)
	ListDisposals(ctx context.Context, status string, limit, offset int) (*DisposalListResult, error)
	ApproveDisposal(ctx context.Context, actor Actor, meta RequestMeta, id, remarks string) (*model.AssetDisposal, error)
	RejectDisposal(ctx context.Context, actor Actor, meta RequestMeta, id, remarks string) (*model.AssetDisposal, error)
	// CompleteDisposal marks the asset DISPOSED.
	CompleteDisposal(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.AssetDisposal, error)
	CancelDisposal(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.AssetDisposal, error)
}

type workflowService struct {
	assets    repository.AssetRepository
	transfers repository.TransferRepository
	disposals repository.DisposalRepository
	audit     AuditService
}

func NewWorkflowService(assets repository.AssetRepository, transfers repository.TransferRepository, disposals repository.DisposalRepository, audit AuditService) WorkflowService {
	return &workflowService{assets: assets, transfers: transfers, disposals: disposals, audit: audit}
}

func canApprove(actor Actor) bool {
	return actor.IsApprover || actor.IsCompanyAdmin
}

func (s *workflowService) loadAsset(ctx context.Context, id string) (*model.Asset, error) {
	a, err := s.assets.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *workflowService) RequestTransfer(ctx context.Context, actor Actor, meta RequestMeta, in TransferInput) (*model.AssetTransfer, error) {
	a, err := s.loadAsset(ctx, in.AssetID)
	if err != nil {
		return nil, err
	}
	if a.Status == model.StatusDisposed {
		return nil, ErrAssetNotAvailable
	}

	now := time.Now().UTC()
	last, err := s.transfers.LastNumber(ctx, transferPrefix+"-"+now.Format("20060102")+"-")
	if err != nil {
		return nil, err
	}

	t := &model.AssetTransfer{
		ID:               uuid.New().String(),
		AssetID:          a.ID,
		TransferNumber:   nextSequenceNumber(transferPrefix, now, last),
		FromUserID:       a.AssignedTo,
		FromLocationID:   a.LocationID,
		FromDepartmentID: a.DepartmentID,
		ToUserID:         in.ToUserID,
		ToLocationID:     in.ToLocationID,
		ToDepartmentID:   in.ToDepartmentID,
		RequestedBy:      actorID(actor),
		RequestedDate:    now,
		Reason:           in.Reason,
		Status:           model.WorkflowPending,
	}
	stored, err := s.transfers.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditCreate, "asset_transfer", stored.ID, stored.TransferNumber, "transfer requested", nil, stored)
	return stored, nil
}

func (s *workflowService) GetTransfer(ctx context.Context, id string) (*model.AssetTransfer, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	t, err := s.transfers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *workflowService) ListTransfers(ctx context.Context, status string, limit, offset int) (*TransferListResult, error) {
	res, err := s.transfers.List(ctx, status, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &TransferListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *workflowService) ApproveTransfer(ctx context.Context, actor Actor, meta RequestMeta, id, remarks string) (*model.AssetTransfer, error) {
	if !canApprove(actor) {
		return nil, ErrForbidden
	}
	t, err := s.GetTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != model.WorkflowPending {
		return nil, ErrWorkflowNotPending
	}
	now := time.Now().UTC()
	t.Status = model.WorkflowApproved
	t.ApprovedBy = actorID(actor)
	t.ApprovalDate = &now
	t.ApprovalRemarks = remarks

	stored, err := s.transfers.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditApprove, "asset_transfer", stored.ID, stored.TransferNumber, "transfer approved", nil, stored)
	return stored, nil
}

func (s *workflowService) RejectTransfer(ctx context.Context, actor Actor, meta RequestMeta, id, remarks string) (*model.AssetTransfer, error) {
	if !canApprove(actor) {
		return nil, ErrForbidden
	}
	t, err := s.GetTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != model.WorkflowPending {
		return nil, ErrWorkflowNotPending
	}
	now := time.Now().UTC()
	t.Status = model.WorkflowRejected
	t.ApprovedBy = actorID(actor)
	t.ApprovalDate = &now
	t.ApprovalRemarks = remarks

	stored, err := s.transfers.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditReject, "asset_transfer", stored.ID, stored.TransferNumber, "transfer rejected", nil, stored)
	return stored, nil
}

func (s *workflowService) CompleteTransfer(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.AssetTransfer, error) {
	t, err := s.GetTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != model.WorkflowApproved {
		return nil, ErrWorkflowNotApproved
	}
	a, err := s.loadAsset(ctx, t.AssetID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a.AssignedTo = t.ToUserID
	if t.ToLocationID != nil {
		a.LocationID = t.ToLocationID
	}
	if t.ToDepartmentID != nil {
		a.DepartmentID = t.ToDepartmentID
	}
	if t.ToUserID != nil {
		a.Status = model.StatusInUse
	}
	a.UpdatedAt = now
	if _, err := s.assets.Update(ctx, a); err != nil {
		return nil, err
	}
	_ = s.assets.AppendHistory(ctx, &model.AssetHistory{
		ID:             uuid.New().String(),
		AssetID:        a.ID,
		ActionType:     model.ActionTransferred,
		ActionDate:     now,
		PerformedBy:    actorID(actor),
		FromLocationID: t.FromLocationID,
		ToLocationID:   t.ToLocationID,
		FromUserID:     t.FromUserID,
		ToUserID:       t.ToUserID,
		Remarks:        t.TransferNumber,
	})

	t.Status = model.WorkflowCompleted
	t.CompletedBy = actorID(actor)
	t.CompletedDate = &now

	stored, err := s.transfers.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "asset_transfer", stored.ID, stored.TransferNumber, "transfer completed", nil, stored)
	return stored, nil
}

func (s *workflowService) CancelTransfer(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.AssetTransfer, error) {
	t, err := s.GetTransfer(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != model.WorkflowPending {
		return nil, ErrWorkflowFinal
	}
	t.Status = model.WorkflowCancelled

	stored, err := s.transfers.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "asset_transfer", stored.ID, stored.TransferNumber, "transfer cancelled", nil, stored)
	return stored, nil
}

func (s *workflowService) RequestDisposal(ctx context.Context, actor Actor, meta RequestMeta, in DisposalInput) (*model.AssetDisposal, error) {
	a, err := s.loadAsset(ctx, in.AssetID)
	if err != nil {
		return nil, err
	}
	if a.Status == model.StatusDisposed {
		return nil, ErrAssetNotAvailable
	}

	now := time.Now().UTC()
	last, err := s.disposals.LastNumber(ctx, disposalPrefix+"-"+now.Format("20060102")+"-")
	if err != nil {
		return nil, err
	}

	d := &model.AssetDisposal{
		ID:               uuid.New().String(),
		AssetID:          a.ID,
		DisposalNumber:   nextSequenceNumber(disposalPrefix, now, last),
		RequestedBy:      actorID(actor),
		RequestedDate:    now,
		Reason:           in.Reason,
		DisposalMethod:   in.DisposalMethod,
		CurrentBookValue: CurrentBookValue(a.PurchasePrice, a.SalvageValue, a.DepreciationRate, a.UsefulLifeYears, a.PurchaseDate, now),
		DisposalValue:    in.DisposalValue,
		DisposalCost:     in.DisposalCost,
		Status:           model.WorkflowPending,
		BuyerDetails:     in.BuyerDetails,
	}
	stored, err := s.disposals.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditCreate, "asset_disposal", stored.ID, stored.DisposalNumber, "disposal requested", nil, stored)
	return stored, nil
}

func (s *workflowService) GetDisposal(ctx context.Context, id string) (*model.AssetDisposal, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	d, err := s.disposals.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *workflowService) ListDisposals(ctx context.Context, status string, limit, offset int) (*DisposalListResult, error) {
	res, err := s.disposals.List(ctx, status, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &DisposalListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *workflowService) ApproveDisposal(ctx context.Context, actor Actor, meta RequestMeta, id, remarks string) (*model.AssetDisposal, error) {
	if !canApprove(actor) {
		return nil, ErrForbidden
	}
	d, err := s.GetDisposal(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Status != model.WorkflowPending {
		return nil, ErrWorkflowNotPending
	}
	now := time.Now().UTC()
	d.Status = model.WorkflowApproved
	d.ApprovedBy = actorID(actor)
	d.ApprovalDate = &now
	d.ApprovalRemarks = remarks

	stored, err := s.disposals.Update(ctx, d)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditApprove, "asset_disposal", stored.ID, stored.DisposalNumber, "disposal approved", nil, stored)
	return stored, nil
}

func (s *workflowService) RejectDisposal(ctx context.Context, actor Actor, meta RequestMeta, id, remarks string) (*model.AssetDisposal, error) {
	if !canApprove(actor) {
		return nil, ErrForbidden
	}
	d, err := s.GetDisposal(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Status != model.WorkflowPending {
		return nil, ErrWorkflowNotPending
	}
	now := time.Now().UTC()
	d.Status = model.WorkflowRejected
	d.ApprovedBy = actorID(actor)
	d.ApprovalDate = &now
	d.ApprovalRemarks = remarks

	stored, err := s.disposals.Update(ctx, d)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditReject, "asset_disposal", stored.ID, stored.DisposalNumber, "disposal rejected", nil, stored)
	return stored, nil
}

func (s *workflowService) CompleteDisposal(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.AssetDisposal, error) {
	d, err := s.GetDisposal(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Status != model.WorkflowApproved {
		return nil, ErrWorkflowNotApproved
	}
	a, err := s.loadAsset(ctx, d.AssetID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	oldStatus := a.Status
	a.Status = model.StatusDisposed
	a.AssignedTo = nil
	a.UpdatedAt = now
	if _, err := s.assets.Update(ctx, a); err != nil {
		return nil, err
	}
	_ = s.assets.AppendHistory(ctx, &model.AssetHistory{
		ID:          uuid.New().String(),
		AssetID:     a.ID,
		ActionType:  model.ActionDisposed,
		ActionDate:  now,
		PerformedBy: actorID(actor),
		OldValue:    oldStatus,
		NewValue:    model.StatusDisposed,
		Remarks:     d.DisposalNumber,
	})

	d.Status = model.WorkflowCompleted
	d.CompletedBy = actorID(actor)
	d.CompletedDate = &now

	stored, err := s.disposals.Update(ctx, d)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "asset_disposal", stored.ID, stored.DisposalNumber, "disposal completed", nil, stored)
	return stored, nil
}

func (s *workflowService) CancelDisposal(ctx context.Context, actor Actor, meta RequestMeta, id string) (*model.AssetDisposal, error) {
	d, err := s.GetDisposal(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.Status != model.WorkflowPending {
		return nil, ErrWorkflowFinal
	}
	d.Status = model.WorkflowCancelled

	stored, err := s.disposals.Update(ctx, d)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "asset_disposal", stored.ID, stored.DisposalNumber, "disposal cancelled", nil, stored)
	return stored, nil
}
