package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"assetz/internal/model"
	"assetz/internal/repository"
)

// AssetPostgres is a PostgreSQL implementation of repository.AssetRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type AssetPostgres struct {
	db *sql.DB
}

// NewAssetPostgres creates a new AssetPostgres repository.
func NewAssetPostgres(db *sql.DB) *AssetPostgres {
	return &AssetPostgres{db: db}
}

var _ repository.AssetRepository = (*AssetPostgres)(nil)

const assetColumns = `id, asset_tag, qr_code, qr_image_key, name, description, make, model,
	serial_number, category_id, vendor_id, location_id, department_id, assigned_to,
	custodian_id, status, condition, purchase_order_number, purchase_date, purchase_price,
	invoice_number, warranty_end_date, amc_vendor_id, amc_end_date, amc_cost,
	depreciation_rate, salvage_value, useful_life_years, notes, is_critical, is_insured,
	created_at, updated_at`

func scanAsset(row interface{ Scan(...any) error }) (*model.Asset, error) {
	var a model.Asset
	if err := row.Scan(
		&a.ID, &a.AssetTag, &a.QRCode, &a.QRImageKey, &a.Name, &a.Description, &a.Make,
		&a.Model, &a.SerialNo, &a.CategoryID, &a.VendorID, &a.LocationID, &a.DepartmentID,
		&a.AssignedTo, &a.CustodianID, &a.Status, &a.Condition, &a.PurchaseOrderNo,
		&a.PurchaseDate, &a.PurchasePrice, &a.InvoiceNo, &a.WarrantyEndDate, &a.AMCVendorID,
		&a.AMCEndDate, &a.AMCCost, &a.DepreciationRate, &a.SalvageValue, &a.UsefulLifeYears,
		&a.Notes, &a.IsCritical, &a.IsInsured, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new asset row and returns the stored record.
func (r *AssetPostgres) Create(ctx context.Context, a *model.Asset) (*model.Asset, error) {
	const q = `
		INSERT INTO assets (id, asset_tag, qr_code, qr_image_key, name, description, make,
			model, serial_number, category_id, vendor_id, location_id, department_id,
			assigned_to, custodian_id, status, condition, purchase_order_number,
			purchase_date, purchase_price, invoice_number, warranty_end_date, amc_vendor_id,
			amc_end_date, amc_cost, depreciation_rate, salvage_value, useful_life_years,
			notes, is_critical, is_insured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $32)
		RETURNING ` + assetColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID, a.AssetTag, a.QRCode, a.QRImageKey, a.Name, a.Description, a.Make, a.Model,
		a.SerialNo, a.CategoryID, a.VendorID, a.LocationID, a.DepartmentID, a.AssignedTo,
		a.CustodianID, a.Status, a.Condition, a.PurchaseOrderNo, a.PurchaseDate,
		a.PurchasePrice, a.InvoiceNo, a.WarrantyEndDate, a.AMCVendorID, a.AMCEndDate,
		a.AMCCost, a.DepreciationRate, a.SalvageValue, a.UsefulLifeYears, a.Notes,
		a.IsCritical, a.IsInsured, a.CreatedAt,
	)
	return scanAsset(row)
}

// FindByID fetches a single asset by its ID, excluding soft-deleted rows.
func (r *AssetPostgres) FindByID(ctx context.Context, id string) (*model.Asset, error) {
	const q = `SELECT ` + assetColumns + ` FROM assets WHERE id = $1 AND deleted_at IS NULL`
	return scanAsset(r.db.QueryRowContext(ctx, q, id))
}

// FindByQRCode fetches a single asset by its QR code UUID.
func (r *AssetPostgres) FindByQRCode(ctx context.Context, qr string) (*model.Asset, error) {
	const q = `SELECT ` + assetColumns + ` FROM assets WHERE qr_code = $1 AND deleted_at IS NULL`
	return scanAsset(r.db.QueryRowContext(ctx, q, qr))
}

// List returns assets matching the filter using LIMIT/OFFSET pagination and a total count.
func (r *AssetPostgres) List(ctx context.Context, f repository.AssetFilter, pq repository.PageQuery) (*repository.PageResult[model.Asset], error) {
	where := []string{"deleted_at IS NULL"}
	args := []any{}

	add := func(cond string, val any) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.CategoryID != "" {
		add("category_id = $%d", f.CategoryID)
	}
	if f.LocationID != "" {
		add("location_id = $%d", f.LocationID)
	}
	if f.AssignedTo != "" {
		add("assigned_to = $%d", f.AssignedTo)
	}
	if f.Search != "" {
		add("(asset_tag ILIKE $%d OR name ILIKE $%[1]d OR serial_number ILIKE $%[1]d)", "%"+f.Search+"%")
	}
	cond := strings.Join(where, " AND ")

	qCount := `SELECT COUNT(*) FROM assets WHERE ` + cond
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := `SELECT ` + assetColumns + ` FROM assets WHERE ` + cond +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, qList, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Asset]{Items: items, Total: total}, nil
}

// Update persists mutable asset fields and returns the stored record.
func (r *AssetPostgres) Update(ctx context.Context, a *model.Asset) (*model.Asset, error) {
	const q = `
		UPDATE assets
		SET asset_tag = $2, qr_image_key = $3, name = $4, description = $5, make = $6,
			model = $7, serial_number = $8, category_id = $9, vendor_id = $10,
			location_id = $11, department_id = $12, assigned_to = $13, custodian_id = $14,
			status = $15, condition = $16, purchase_order_number = $17, purchase_date = $18,
			purchase_price = $19, invoice_number = $20, warranty_end_date = $21,
			amc_vendor_id = $22, amc_end_date = $23, amc_cost = $24, depreciation_rate = $25,
			salvage_value = $26, useful_life_years = $27, notes = $28, is_critical = $29,
			is_insured = $30, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + assetColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID, a.AssetTag, a.QRImageKey, a.Name, a.Description, a.Make, a.Model, a.SerialNo,
		a.CategoryID, a.VendorID, a.LocationID, a.DepartmentID, a.AssignedTo, a.CustodianID,
		a.Status, a.Condition, a.PurchaseOrderNo, a.PurchaseDate, a.PurchasePrice,
		a.InvoiceNo, a.WarrantyEndDate, a.AMCVendorID, a.AMCEndDate, a.AMCCost,
		a.DepreciationRate, a.SalvageValue, a.UsefulLifeYears, a.Notes, a.IsCritical,
		a.IsInsured,
	)
	return scanAsset(row)
}

// SoftDelete marks an asset deleted. It does not return an error if the row does not exist.
func (r *AssetPostgres) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE assets SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// AppendHistory inserts one history entry for an asset.
func (r *AssetPostgres) AppendHistory(ctx context.Context, h *model.AssetHistory) error {
	const q = `
		INSERT INTO asset_history (id, asset_id, action_type, action_date, performed_by,
			old_value, new_value, from_location_id, to_location_id, from_user_id,
			to_user_id, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, q,
		h.ID, h.AssetID, h.ActionType, h.ActionDate, h.PerformedBy, h.OldValue, h.NewValue,
		h.FromLocationID, h.ToLocationID, h.FromUserID, h.ToUserID, h.Remarks,
	)
	return err
}

// ListHistory returns an asset's history trail, newest first.
func (r *AssetPostgres) ListHistory(ctx context.Context, assetID string, pq repository.PageQuery) (*repository.PageResult[model.AssetHistory], error) {
	const qCount = `SELECT COUNT(*) FROM asset_history WHERE asset_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, assetID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, asset_id, action_type, action_date, performed_by, old_value, new_value,
			from_location_id, to_location_id, from_user_id, to_user_id, remarks
		FROM asset_history
		WHERE asset_id = $1
		ORDER BY action_date DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, qList, assetID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AssetHistory, 0)
	for rows.Next() {
		var h model.AssetHistory
		if err := rows.Scan(
			&h.ID, &h.AssetID, &h.ActionType, &h.ActionDate, &h.PerformedBy, &h.OldValue,
			&h.NewValue, &h.FromLocationID, &h.ToLocationID, &h.FromUserID, &h.ToUserID,
			&h.Remarks,
		); err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.AssetHistory]{Items: items, Total: total}, nil
}
