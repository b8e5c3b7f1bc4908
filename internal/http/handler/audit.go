package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"assetz/internal/repository"
	"assetz/internal/service"
)

// ListAuditLogs returns the filtered audit trail, newest first. Admin only.
func ListAuditLogs(svc service.AuditService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		f := repository.AuditFilter{
			UserID:     c.Query("user_id"),
			EntityType: c.Query("entity_type"),
			EntityID:   c.Query("entity_id"),
			Action:     c.Query("action"),
		}
		if v := c.Query("from"); v != "" {
			t, perr := time.Parse(dateLayout, v)
			if perr != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid from")
			}
			f.From = t
		}
		if v := c.Query("to"); v != "" {
			t, perr := time.Parse(dateLayout, v)
			if perr != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid to")
			}
			f.To = t
		}
		res, err := svc.List(c.UserContext(), f, limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
