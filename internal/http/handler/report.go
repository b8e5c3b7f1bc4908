package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"assetz/internal/service"
)

// AssetSummaryReport returns inventory counts and total purchase value.
func AssetSummaryReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Summary(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// DepreciationReport returns per-asset book values.
func DepreciationReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Depreciation(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": res, "total": len(res)})
	}
}

// ExpiringCoverageReport lists assets whose warranty or AMC lapses within
// the next N days (query parameter days, default 30).
func ExpiringCoverageReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days, err := strconv.Atoi(c.Query("days", "30"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DAYS", "invalid days")
		}
		res, err := svc.ExpiringCoverage(c.UserContext(), days)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": res, "total": len(res)})
	}
}

// ExportAssets streams the asset registry as a CSV attachment.
func ExportAssets(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="assets.csv"`)
		if err := svc.ExportAssetsCSV(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Response().BodyWriter()); err != nil {
			return writeServiceError(c, err)
		}
		return nil
	}
}
