package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"assetz/internal/model"
	"assetz/internal/repository"
)

func assetRows(a *model.Asset) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "asset_tag", "qr_code", "qr_image_key", "name", "description", "make", "model",
		"serial_number", "category_id", "vendor_id", "location_id", "department_id", "assigned_to",
		"custodian_id", "status", "condition", "purchase_order_number", "purchase_date", "purchase_price",
		"invoice_number", "warranty_end_date", "amc_vendor_id", "amc_end_date", "amc_cost",
		"depreciation_rate", "salvage_value", "useful_life_years", "notes", "is_critical", "is_insured",
		"created_at", "updated_at",
	}).AddRow(
		a.ID, a.AssetTag, a.QRCode, a.QRImageKey, a.Name, a.Description, a.Make, a.Model,
		a.SerialNo, a.CategoryID, a.VendorID, a.LocationID, a.DepartmentID, a.AssignedTo,
		a.CustodianID, a.Status, a.Condition, a.PurchaseOrderNo, a.PurchaseDate, a.PurchasePrice,
		a.InvoiceNo, a.WarrantyEndDate, a.AMCVendorID, a.AMCEndDate, a.AMCCost,
		a.DepreciationRate, a.SalvageValue, a.UsefulLifeYears, a.Notes, a.IsCritical, a.IsInsured,
		a.CreatedAt, a.UpdatedAt,
	)
}

func testAsset() *model.Asset {
	now := time.Now().UTC()
	return &model.Asset{
		ID:         "asset-1",
		AssetTag:   "IT-001",
		QRCode:     "qr-1",
		QRImageKey: "qrcodes/qr-1.png",
		Name:       "Laptop",
		CategoryID: "cat-1",
		Status:     model.StatusInStock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestAssetPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAssetPostgres(db)
	ctx := context.Background()
	a := testAsset()

	mock.ExpectQuery("INSERT INTO assets").
		WillReturnRows(assetRows(a))

	result, err := repo.Create(ctx, a)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, a.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAssetPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM assets WHERE id = ?").
			WithArgs("asset-1").
			WillReturnRows(assetRows(testAsset()))

		a, err := repo.FindByID(ctx, "asset-1")

		assert.NoError(t, err)
		assert.Equal(t, "asset-1", a.ID)
		assert.Equal(t, "IT-001", a.AssetTag)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM assets WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		a, err := repo.FindByID(ctx, "missing")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, a)
	})
}

func TestAssetPostgres_FindByQRCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAssetPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM assets WHERE qr_code = ?").
		WithArgs("qr-1").
		WillReturnRows(assetRows(testAsset()))

	a, err := repo.FindByQRCode(ctx, "qr-1")

	assert.NoError(t, err)
	assert.Equal(t, "qr-1", a.QRCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAssetPostgres(db)
	ctx := context.Background()

	t.Run("no filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM assets").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		mock.ExpectQuery("SELECT (.+) FROM assets WHERE deleted_at IS NULL ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(assetRows(testAsset()))

		res, err := repo.List(ctx, repository.AssetFilter{}, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("status filter binds argument", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM assets").
			WithArgs(model.StatusInUse).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("SELECT (.+) FROM assets WHERE deleted_at IS NULL AND status = ?").
			WithArgs(model.StatusInUse, 10, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		res, err := repo.List(ctx, repository.AssetFilter{Status: model.StatusInUse}, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		assert.Empty(t, res.Items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAssetPostgres_SoftDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAssetPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE assets SET deleted_at").
		WithArgs("asset-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SoftDelete(ctx, "asset-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetPostgres_AppendHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAssetPostgres(db)
	ctx := context.Background()

	h := &model.AssetHistory{
		ID:         "hist-1",
		AssetID:    "asset-1",
		ActionType: model.ActionCreated,
		ActionDate: time.Now().UTC(),
		NewValue:   model.StatusInStock,
	}

	mock.ExpectExec("INSERT INTO asset_history").
		WithArgs(h.ID, h.AssetID, h.ActionType, h.ActionDate, h.PerformedBy, h.OldValue,
			h.NewValue, h.FromLocationID, h.ToLocationID, h.FromUserID, h.ToUserID, h.Remarks).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.AppendHistory(ctx, h)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetPostgres_ListHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAssetPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM asset_history").
		WithArgs("asset-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := sqlmock.NewRows([]string{
		"id", "asset_id", "action_type", "action_date", "performed_by", "old_value",
		"new_value", "from_location_id", "to_location_id", "from_user_id", "to_user_id", "remarks",
	}).AddRow("hist-1", "asset-1", model.ActionCreated, time.Now(), nil, "", model.StatusInStock, nil, nil, nil, nil, "")

	mock.ExpectQuery("SELECT (.+) FROM asset_history").
		WithArgs("asset-1", 10, 0).
		WillReturnRows(rows)

	res, err := repo.ListHistory(ctx, "asset-1", repository.PageQuery{Limit: 10, Offset: 0})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
