package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"assetz/internal/model"
)

// AssetFilter narrows asset listings. Zero values mean "no filter".
type AssetFilter struct {
	Status     string
	CategoryID string
	LocationID string
	AssignedTo string
	Search     string // matches asset_tag, name or serial_number
}

// AssetRepository defines data access for assets and their history trail.
type AssetRepository interface {
	Create(ctx context.Context, a *model.Asset) (*model.Asset, error)
	FindByID(ctx context.Context, id string) (*model.Asset, error)
	FindByQRCode(ctx context.Context, qr string) (*model.Asset, error)
	List(ctx context.Context, f AssetFilter, pq PageQuery) (*PageResult[model.Asset], error)
	Update(ctx context.Context, a *model.Asset) (*model.Asset, error)
	SoftDelete(ctx context.Context, id string) error

	// AppendHistory inserts one history entry for an asset.
	AppendHistory(ctx context.Context, h *model.AssetHistory) error
	// ListHistory returns an asset's history trail, newest first.
	ListHistory(ctx context.Context, assetID string, pq PageQuery) (*PageResult[model.AssetHistory], error)
}

// DocumentRepository defines data access for asset documents.
type DocumentRepository interface {
	Create(ctx context.Context, d *model.AssetDocument) (*model.AssetDocument, error)
	FindByID(ctx context.Context, id string) (*model.AssetDocument, error)
	ListByAsset(ctx context.Context, assetID string, pq PageQuery) (*PageResult[model.AssetDocument], error)
	// Delete removes a document by ID. It returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}

// TransferRepository defines data access for asset transfer workflows.
type TransferRepository interface {
	Create(ctx context.Context, t *model.AssetTransfer) (*model.AssetTransfer, error)
	FindByID(ctx context.Context, id string) (*model.AssetTransfer, error)
	List(ctx context.Context, status string, pq PageQuery) (*PageResult[model.AssetTransfer], error)
	Update(ctx context.Context, t *model.AssetTransfer) (*model.AssetTransfer, error)
	// LastNumber returns the highest workflow number matching the prefix, or "" when none exists.
	LastNumber(ctx context.Context, prefix string) (string, error)
}

// DisposalRepository defines data access for asset disposal workflows.
type DisposalRepository interface {
	Create(ctx context.Context, d *model.AssetDisposal) (*model.AssetDisposal, error)
	FindByID(ctx context.Context, id string) (*model.AssetDisposal, error)
	List(ctx context.Context, status string, pq PageQuery) (*PageResult[model.AssetDisposal], error)
	Update(ctx context.Context, d *model.AssetDisposal) (*model.AssetDisposal, error)
	LastNumber(ctx context.Context, prefix string) (string, error)
}

// StatusCount is one row of a grouped count query.
type StatusCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// DepreciationRow carries the fields the depreciation report needs per asset.
type DepreciationRow struct {
	ID               string
	AssetTag         string
	Name             string
	PurchaseDate     *time.Time
	PurchasePrice    *decimal.Decimal
	SalvageValue     *decimal.Decimal
	DepreciationRate *decimal.Decimal
	UsefulLifeYears  *int
}

// ReportRepository exposes the aggregate queries behind reports.
type ReportRepository interface {
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByCategory(ctx context.Context) ([]StatusCount, error)
	CountByLocation(ctx context.Context) ([]StatusCount, error)
	TotalPurchaseValue(ctx context.Context) (decimal.Decimal, error)
	// DepreciationRows returns every non-deleted asset with a purchase price.
	DepreciationRows(ctx context.Context) ([]DepreciationRow, error)
	// ExpiringCoverage returns assets whose warranty or AMC ends within the window.
	ExpiringCoverage(ctx context.Context, from, to time.Time) ([]model.Asset, error)
}
