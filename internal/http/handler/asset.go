package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"assetz/internal/model"
	"assetz/internal/repository"
	"assetz/internal/service"
)

const dateLayout = "2006-01-02"

type assetRequest struct {
	AssetTag    string `json:"asset_tag" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	SerialNo    string `json:"serial_number"`

	CategoryID   string  `json:"category_id" validate:"required,uuid4"`
	VendorID     *string `json:"vendor_id"`
	LocationID   *string `json:"location_id"`
	DepartmentID *string `json:"department_id"`
	CustodianID  *string `json:"custodian_id"`

	Status    string `json:"status"`
	Condition string `json:"condition" validate:"omitempty,oneof=EXCELLENT GOOD FAIR POOR NOT_WORKING"`

	PurchaseOrderNo string  `json:"purchase_order_number"`
	PurchaseDate    *string `json:"purchase_date"`
	PurchasePrice   *string `json:"purchase_price"`
	InvoiceNo       string  `json:"invoice_number"`

	WarrantyEndDate *string `json:"warranty_end_date"`
	AMCVendorID     *string `json:"amc_vendor_id"`
	AMCEndDate      *string `json:"amc_end_date"`
	AMCCost         *string `json:"amc_cost"`

	DepreciationRate *string `json:"depreciation_rate"`
	SalvageValue     *string `json:"salvage_value"`
	UsefulLifeYears  *int    `json:"useful_life_years"`

	Notes      string `json:"notes"`
	IsCritical bool   `json:"is_critical"`
	IsInsured  bool   `json:"is_insured"`
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func assetFromRequest(c *fiber.Ctx, req *assetRequest) (*model.Asset, error) {
	a := &model.Asset{
		AssetTag:        req.AssetTag,
		Name:            req.Name,
		Description:     req.Description,
		Make:            req.Make,
		Model:           req.Model,
		SerialNo:        req.SerialNo,
		CategoryID:      req.CategoryID,
		VendorID:        req.VendorID,
		LocationID:      req.LocationID,
		DepartmentID:    req.DepartmentID,
		CustodianID:     req.CustodianID,
		Status:          req.Status,
		Condition:       req.Condition,
		PurchaseOrderNo: req.PurchaseOrderNo,
		InvoiceNo:       req.InvoiceNo,
		AMCVendorID:     req.AMCVendorID,
		UsefulLifeYears: req.UsefulLifeYears,
		Notes:           req.Notes,
		IsCritical:      req.IsCritical,
		IsInsured:       req.IsInsured,
	}

	var err error
	if a.PurchaseDate, err = parseDate(req.PurchaseDate); err != nil {
		return nil, writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid purchase_date")
	}
	if a.WarrantyEndDate, err = parseDate(req.WarrantyEndDate); err != nil {
		return nil, writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid warranty_end_date")
	}
	if a.AMCEndDate, err = parseDate(req.AMCEndDate); err != nil {
		return nil, writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid amc_end_date")
	}
	if a.PurchasePrice, err = parseDecimal(req.PurchasePrice); err != nil {
		return nil, writeError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "invalid purchase_price")
	}
	if a.AMCCost, err = parseDecimal(req.AMCCost); err != nil {
		return nil, writeError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "invalid amc_cost")
	}
	if a.DepreciationRate, err = parseDecimal(req.DepreciationRate); err != nil {
		return nil, writeError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "invalid depreciation_rate")
	}
	if a.SalvageValue, err = parseDecimal(req.SalvageValue); err != nil {
		return nil, writeError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "invalid salvage_value")
	}
	return a, nil
}

// CreateAsset registers a new asset and generates its QR code.
func CreateAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req assetRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		a, err := assetFromRequest(c, &req)
		if err != nil {
			return err
		}
		stored, err := svc.Create(c.UserContext(), actorFromCtx(c), metaFromCtx(c), a)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// ListAssets returns a filtered, paginated asset list.
func ListAssets(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		f := repository.AssetFilter{
			Status:     c.Query("status"),
			CategoryID: c.Query("category_id"),
			LocationID: c.Query("location_id"),
			AssignedTo: c.Query("assigned_to"),
			Search:     c.Query("search"),
		}
		res, err := svc.List(c.UserContext(), f, limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetAsset returns one asset by ID.
func GetAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

// GetAssetByQR resolves an asset from a scanned QR code value.
func GetAssetByQR(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.GetByQRCode(c.UserContext(), c.Params("qr"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

// UpdateAsset replaces an asset's mutable fields.
func UpdateAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req assetRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		a, err := assetFromRequest(c, &req)
		if err != nil {
			return err
		}
		a.ID = c.Params("id")
		stored, err := svc.Update(c.UserContext(), actorFromCtx(c), metaFromCtx(c), a)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stored)
	}
}

// DeleteAsset soft-deletes an asset. Admin only.
func DeleteAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

type assignRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid4"`
	Remarks string `json:"remarks"`
}

type remarksRequest struct {
	Remarks string `json:"remarks"`
}

type changeStatusRequest struct {
	Status  string `json:"status" validate:"required"`
	Remarks string `json:"remarks"`
}

// AssignAsset hands an asset to a user.
func AssignAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req assignRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		a, err := svc.Assign(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"), req.UserID, req.Remarks)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

// ReturnAsset takes an asset back into stock.
func ReturnAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req remarksRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		a, err := svc.Return(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"), req.Remarks)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

// ChangeAssetStatus moves an asset to a new lifecycle status.
func ChangeAssetStatus(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req changeStatusRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		a, err := svc.ChangeStatus(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"), req.Status, req.Remarks)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

// AssetHistory returns an asset's movement trail, newest first.
func AssetHistory(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		res, err := svc.History(c.UserContext(), c.Params("id"), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// AssetBookValue returns the asset with its current depreciated value.
func AssetBookValue(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.BookValue(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// AssetQRImage redirects to a presigned URL for the QR code PNG.
func AssetQRImage(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url, err := svc.QRImage(c.UserContext(), c.Params("id"), 15*time.Minute)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}
