package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"assetz/internal/model"
	"assetz/internal/repository"
)

const exportPageSize = 500

// AssetSummary aggregates the inventory for the dashboard.
type AssetSummary struct {
	ByStatus           []repository.StatusCount `json:"by_status"`
	ByCategory         []repository.StatusCount `json:"by_category"`
	ByLocation         []repository.StatusCount `json:"by_location"`
	TotalPurchaseValue string                   `json:"total_purchase_value"`
	TotalBookValue     string                   `json:"total_book_value"`
}

// DepreciationEntry is one asset's line in the depreciation report.
type DepreciationEntry struct {
	AssetID           string `json:"asset_id"`
	AssetTag          string `json:"asset_tag"`
	Name              string `json:"name"`
	PurchaseDate      string `json:"purchase_date,omitempty"`
	PurchasePrice     string `json:"purchase_price"`
	AnnualAmount      string `json:"annual_depreciation"`
	AccumulatedAmount string `json:"accumulated_depreciation"`
	BookValue         string `json:"book_value"`
}

// ReportService produces aggregate views over the asset registry.
type ReportService interface {
	Summary(ctx context.Context) (*AssetSummary, error)
	Depreciation(ctx context.Context) ([]DepreciationEntry, error)
	// ExpiringCoverage lists assets whose warranty or AMC lapses within days.
	ExpiringCoverage(ctx context.Context, days int) ([]model.Asset, error)
	// ExportAssetsCSV streams the full asset registry as CSV.
	ExportAssetsCSV(ctx context.Context, actor Actor, meta RequestMeta, w io.Writer) error
}

type reportService struct {
	repo   repository.ReportRepository
	assets repository.AssetRepository
	audit  AuditService
}

func NewReportService(repo repository.ReportRepository, assets repository.AssetRepository, audit AuditService) ReportService {
	return &reportService{repo: repo, assets: assets, audit: audit}
}

func (s *reportService) Summary(ctx context.Context) (*AssetSummary, error) {
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	byLocation, err := s.repo.CountByLocation(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.TotalPurchaseValue(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.DepreciationRows(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	totalBook := decimal.Zero
	for _, r := range rows {
		if bv := CurrentBookValue(r.PurchasePrice, r.SalvageValue, r.DepreciationRate, r.UsefulLifeYears, r.PurchaseDate, now); bv != nil {
			totalBook = totalBook.Add(*bv)
		}
	}
	return &AssetSummary{
		ByStatus:           byStatus,
		ByCategory:         byCategory,
		ByLocation:         byLocation,
		TotalPurchaseValue: total.StringFixed(2),
		TotalBookValue:     totalBook.StringFixed(2),
	}, nil
}

func (s *reportService) Depreciation(ctx context.Context) ([]DepreciationEntry, error) {
	rows, err := s.repo.DepreciationRows(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	entries := make([]DepreciationEntry, 0, len(rows))
	for _, r := range rows {
		e := DepreciationEntry{
			AssetID:  r.ID,
			AssetTag: r.AssetTag,
			Name:     r.Name,
		}
		if r.PurchaseDate != nil {
			e.PurchaseDate = r.PurchaseDate.Format("2006-01-02")
		}
		if r.PurchasePrice != nil {
			e.PurchasePrice = r.PurchasePrice.StringFixed(2)
		}
		annual := StraightLineAnnualDepreciation(r.PurchasePrice, r.SalvageValue, r.UsefulLifeYears)
		if annual == nil && r.PurchasePrice != nil && r.DepreciationRate != nil {
			// First-year charge for reducing balance assets without a useful life.
			a := r.PurchasePrice.Mul(r.DepreciationRate.Div(decimal.NewFromInt(100)))
			annual = &a
		}
		if annual != nil {
			e.AnnualAmount = annual.StringFixed(2)
		}
		bv := CurrentBookValue(r.PurchasePrice, r.SalvageValue, r.DepreciationRate, r.UsefulLifeYears, r.PurchaseDate, now)
		if bv != nil && r.PurchasePrice != nil {
			e.BookValue = bv.StringFixed(2)
			e.AccumulatedAmount = r.PurchasePrice.Sub(*bv).StringFixed(2)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *reportService) ExpiringCoverage(ctx context.Context, days int) ([]model.Asset, error) {
	if days <= 0 {
		days = 30
	}
	now := time.Now().UTC()
	return s.repo.ExpiringCoverage(ctx, now, now.AddDate(0, 0, days))
}

func (s *reportService) ExportAssetsCSV(ctx context.Context, actor Actor, meta RequestMeta, w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{
		"asset_tag", "name", "serial_number", "category_id", "location_id",
		"assigned_to", "status", "condition", "purchase_date", "purchase_price",
		"warranty_end_date", "amc_end_date",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for offset := 0; ; offset += exportPageSize {
		page, err := s.assets.List(ctx, repository.AssetFilter{}, repository.PageQuery{Limit: exportPageSize, Offset: offset})
		if err != nil {
			return err
		}
		for i := range page.Items {
			a := &page.Items[i]
			rec := []string{
				a.AssetTag, a.Name, a.SerialNo, a.CategoryID,
				strOrEmpty(a.LocationID), strOrEmpty(a.AssignedTo),
				a.Status, a.Condition,
				dateOrEmpty(a.PurchaseDate), decOrEmpty(a.PurchasePrice),
				dateOrEmpty(a.WarrantyEndDate), dateOrEmpty(a.AMCEndDate),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		if offset+len(page.Items) >= page.Total || len(page.Items) == 0 {
			break
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditExport, "asset", "", "asset registry", "assets exported to csv", nil, nil)
	return nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func decOrEmpty(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
