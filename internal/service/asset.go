package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"assetz/internal/model"
	"assetz/internal/repository"
	"assetz/internal/storage"
)

const qrImageSize = 256

// AssetListResult is the service-level DTO for paginated assets.
type AssetListResult struct {
	Items []model.Asset `json:"data"`
	Total int           `json:"total"`
}

// HistoryListResult is the service-level DTO for an asset's history trail.
type HistoryListResult struct {
	Items []model.AssetHistory `json:"data"`
	Total int                  `json:"total"`
}

// AssetService defines the asset inventory use cases.
type AssetService interface {
	// Create stores a new asset, generates its QR code image in object
	// storage and appends the initial history entry.
	Create(ctx context.Context, actor Actor, meta RequestMeta, a *model.Asset) (*model.Asset, error)

	Get(ctx context.Context, id string) (*model.Asset, error)
	GetByQRCode(ctx context.Context, qr string) (*model.Asset, error)
	List(ctx context.Context, f repository.AssetFilter, limit, offset int) (*AssetListResult, error)
	Update(ctx context.Context, actor Actor, meta RequestMeta, a *model.Asset) (*model.Asset, error)
	Delete(ctx context.Context, actor Actor, meta RequestMeta, id string) error

	// Assign hands the asset to a user and moves it to IN_USE.
	Assign(ctx context.Context, actor Actor, meta RequestMeta, id, userID, remarks string) (*model.Asset, error)
	// Return takes the asset back from its holder and moves it to IN_STOCK.
	Return(ctx context.Context, actor Actor, meta RequestMeta, id, remarks string) (*model.Asset, error)
	// ChangeStatus moves the asset to a new lifecycle status.
	ChangeStatus(ctx context.Context, actor Actor, meta RequestMeta, id, status, remarks string) (*model.Asset, error)

	History(ctx context.Context, assetID string, limit, offset int) (*HistoryListResult, error)
	// BookValue computes the asset's current depreciated value.
	BookValue(ctx context.Context, id string) (*BookValueResult, error)

	// QRImage returns a presigned download URL for the asset's QR code image.
	QRImage(ctx context.Context, id string, expiry time.Duration) (string, error)
}

// BookValueResult pairs an asset with its computed book value. BookValue is
// empty when the asset has no purchase price or date to depreciate from.
type BookValueResult struct {
	Asset     *model.Asset `json:"asset"`
	BookValue string       `json:"book_value,omitempty"`
}

type assetService struct {
	repo  repository.AssetRepository
	store storage.Storage
	audit AuditService
}

func NewAssetService(repo repository.AssetRepository, store storage.Storage, audit AuditService) AssetService {
	return &assetService{repo: repo, store: store, audit: audit}
}

func validStatus(status string) bool {
	for _, s := range model.ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s *assetService) Create(ctx context.Context, actor Actor, meta RequestMeta, a *model.Asset) (*model.Asset, error) {
	if a.Status == "" {
		a.Status = model.StatusInStock
	}
	if !validStatus(a.Status) {
		return nil, ErrInvalidStatus
	}

	now := time.Now().UTC()
	a.ID = uuid.New().String()
	a.QRCode = uuid.New().String()
	a.CreatedAt = now
	a.UpdatedAt = now

	png, err := qrcode.Encode(a.QRCode, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr image: %w", err)
	}
	key := "qrcodes/" + a.QRCode + ".png"
	if _, err := s.store.Put(ctx, key, bytes.NewReader(png), storage.PutObjectOptions{
		Size:        int64(len(png)),
		ContentType: "image/png",
	}); err != nil {
		return nil, fmt.Errorf("upload qr image: %w", err)
	}
	a.QRImageKey = key

	stored, err := s.repo.Create(ctx, a)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	_ = s.repo.AppendHistory(ctx, &model.AssetHistory{
		ID:          uuid.New().String(),
		AssetID:     stored.ID,
		ActionType:  model.ActionCreated,
		ActionDate:  now,
		PerformedBy: actorID(actor),
		NewValue:    stored.Status,
	})
	_ = s.audit.Record(ctx, actor, meta, model.AuditCreate, "asset", stored.ID, stored.AssetTag, "asset created", nil, stored)
	return stored, nil
}

func (s *assetService) Get(ctx context.Context, id string) (*model.Asset, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *assetService) GetByQRCode(ctx context.Context, qr string) (*model.Asset, error) {
	if qr == "" {
		return nil, ErrIDRequired
	}
	a, err := s.repo.FindByQRCode(ctx, qr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *assetService) List(ctx context.Context, f repository.AssetFilter, limit, offset int) (*AssetListResult, error) {
	if f.Status != "" && !validStatus(f.Status) {
		return nil, ErrInvalidStatus
	}
	res, err := s.repo.List(ctx, f, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &AssetListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *assetService) Update(ctx context.Context, actor Actor, meta RequestMeta, a *model.Asset) (*model.Asset, error) {
	before, err := s.Get(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if a.Status == "" {
		a.Status = before.Status
	}
	if !validStatus(a.Status) {
		return nil, ErrInvalidStatus
	}

	// QR identity and creation time never change through updates.
	a.QRCode = before.QRCode
	a.QRImageKey = before.QRImageKey
	a.CreatedAt = before.CreatedAt
	a.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, err
	}

	_ = s.repo.AppendHistory(ctx, &model.AssetHistory{
		ID:          uuid.New().String(),
		AssetID:     stored.ID,
		ActionType:  model.ActionUpdated,
		ActionDate:  stored.UpdatedAt,
		PerformedBy: actorID(actor),
		OldValue:    before.Status,
		NewValue:    stored.Status,
	})
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "asset", stored.ID, stored.AssetTag, "asset updated", before, stored)
	return stored, nil
}

func (s *assetService) Delete(ctx context.Context, actor Actor, meta RequestMeta, id string) error {
	a, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditDelete, "asset", a.ID, a.AssetTag, "asset deleted", a, nil)
	return nil
}

func (s *assetService) Assign(ctx context.Context, actor Actor, meta RequestMeta, id, userID, remarks string) (*model.Asset, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch a.Status {
	case model.StatusInStock, model.StatusDeployed, model.StatusInUse:
	default:
		return nil, ErrAssetNotAvailable
	}

	fromUser := a.AssignedTo
	a.AssignedTo = &userID
	a.Status = model.StatusInUse
	a.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, err
	}
	_ = s.repo.AppendHistory(ctx, &model.AssetHistory{
		ID:          uuid.New().String(),
		AssetID:     stored.ID,
		ActionType:  model.ActionAssigned,
		ActionDate:  stored.UpdatedAt,
		PerformedBy: actorID(actor),
		FromUserID:  fromUser,
		ToUserID:    &userID,
		Remarks:     remarks,
	})
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "asset", stored.ID, stored.AssetTag, "asset assigned", nil, stored)
	return stored, nil
}

func (s *assetService) Return(ctx context.Context, actor Actor, meta RequestMeta, id, remarks string) (*model.Asset, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.AssignedTo == nil {
		return nil, ErrAssetNotAvailable
	}

	fromUser := a.AssignedTo
	a.AssignedTo = nil
	a.Status = model.StatusInStock
	a.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, err
	}
	_ = s.repo.AppendHistory(ctx, &model.AssetHistory{
		ID:          uuid.New().String(),
		AssetID:     stored.ID,
		ActionType:  model.ActionReturned,
		ActionDate:  stored.UpdatedAt,
		PerformedBy: actorID(actor),
		FromUserID:  fromUser,
		Remarks:     remarks,
	})
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "asset", stored.ID, stored.AssetTag, "asset returned", nil, stored)
	return stored, nil
}

func (s *assetService) ChangeStatus(ctx context.Context, actor Actor, meta RequestMeta, id, status, remarks string) (*model.Asset, error) {
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStatus := a.Status
	a.Status = status
	a.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, err
	}
	_ = s.repo.AppendHistory(ctx, &model.AssetHistory{
		ID:          uuid.New().String(),
		AssetID:     stored.ID,
		ActionType:  model.ActionStatusChanged,
		ActionDate:  stored.UpdatedAt,
		PerformedBy: actorID(actor),
		OldValue:    oldStatus,
		NewValue:    status,
		Remarks:     remarks,
	})
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "asset", stored.ID, stored.AssetTag, "asset status changed", nil, stored)
	return stored, nil
}

func (s *assetService) History(ctx context.Context, assetID string, limit, offset int) (*HistoryListResult, error) {
	if assetID == "" {
		return nil, ErrIDRequired
	}
	res, err := s.repo.ListHistory(ctx, assetID, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &HistoryListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *assetService) BookValue(ctx context.Context, id string) (*BookValueResult, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &BookValueResult{Asset: a}
	if bv := CurrentBookValue(a.PurchasePrice, a.SalvageValue, a.DepreciationRate, a.UsefulLifeYears, a.PurchaseDate, time.Now().UTC()); bv != nil {
		out.BookValue = bv.StringFixed(2)
	}
	return out, nil
}

func (s *assetService) QRImage(ctx context.Context, id string, expiry time.Duration) (string, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if a.QRImageKey == "" {
		return "", ErrNotFound
	}
	return s.store.PresignGet(ctx, a.QRImageKey, expiry)
}

func actorID(actor Actor) *string {
	if actor.ID == "" {
		return nil
	}
	id := actor.ID
	return &id
}
