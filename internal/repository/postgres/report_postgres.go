package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"assetz/internal/model"
	"assetz/internal/repository"
)

// ReportPostgres is a PostgreSQL implementation of repository.ReportRepository.
// All queries are read-only aggregates over non-deleted assets.
type ReportPostgres struct {
	db *sql.DB
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

func (r *ReportPostgres) groupCount(ctx context.Context, q string) ([]repository.StatusCount, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]repository.StatusCount, 0)
	for rows.Next() {
		var c repository.StatusCount
		if err := rows.Scan(&c.Key, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CountByStatus returns asset counts grouped by status.
func (r *ReportPostgres) CountByStatus(ctx context.Context) ([]repository.StatusCount, error) {
	const q = `
		SELECT status, COUNT(*) FROM assets
		WHERE deleted_at IS NULL
		GROUP BY status ORDER BY status`
	return r.groupCount(ctx, q)
}

// CountByCategory returns asset counts grouped by category name.
func (r *ReportPostgres) CountByCategory(ctx context.Context) ([]repository.StatusCount, error) {
	const q = `
		SELECT c.name, COUNT(*) FROM assets a
		JOIN categories c ON c.id = a.category_id
		WHERE a.deleted_at IS NULL
		GROUP BY c.name ORDER BY c.name`
	return r.groupCount(ctx, q)
}

// CountByLocation returns asset counts grouped by location name.
// Unassigned assets appear under an empty key.
func (r *ReportPostgres) CountByLocation(ctx context.Context) ([]repository.StatusCount, error) {
	const q = `
		SELECT COALESCE(l.name, ''), COUNT(*) FROM assets a
		LEFT JOIN locations l ON l.id = a.location_id
		WHERE a.deleted_at IS NULL
		GROUP BY l.name ORDER BY COALESCE(l.name, '')`
	return r.groupCount(ctx, q)
}

// TotalPurchaseValue sums purchase prices across non-deleted assets.
func (r *ReportPostgres) TotalPurchaseValue(ctx context.Context) (decimal.Decimal, error) {
	const q = `SELECT COALESCE(SUM(purchase_price), 0) FROM assets WHERE deleted_at IS NULL`
	var total decimal.Decimal
	if err := r.db.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// DepreciationRows returns every non-deleted asset with a purchase price.
func (r *ReportPostgres) DepreciationRows(ctx context.Context) ([]repository.DepreciationRow, error) {
	const q = `
		SELECT id, asset_tag, name, purchase_date, purchase_price, salvage_value,
			depreciation_rate, useful_life_years
		FROM assets
		WHERE deleted_at IS NULL AND purchase_price IS NOT NULL
		ORDER BY asset_tag`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]repository.DepreciationRow, 0)
	for rows.Next() {
		var d repository.DepreciationRow
		if err := rows.Scan(
			&d.ID, &d.AssetTag, &d.Name, &d.PurchaseDate, &d.PurchasePrice,
			&d.SalvageValue, &d.DepreciationRate, &d.UsefulLifeYears,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ExpiringCoverage returns assets whose warranty or AMC ends within [from, to].
func (r *ReportPostgres) ExpiringCoverage(ctx context.Context, from, to time.Time) ([]model.Asset, error) {
	const q = `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE deleted_at IS NULL
			AND ((warranty_end_date BETWEEN $1 AND $2) OR (amc_end_date BETWEEN $1 AND $2))
		ORDER BY COALESCE(warranty_end_date, amc_end_date)`
	rows, err := r.db.QueryContext(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}
