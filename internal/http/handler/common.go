package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"assetz/internal/http/middleware"
	"assetz/internal/service"
)

var validate = validator.New()

// parseBody unmarshals and validates a JSON request body.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	}
	return nil
}

// parsePage reads limit/offset query parameters with the standard defaults.
func parsePage(c *fiber.Ctx) (int, int, error) {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return 0, 0, writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return 0, 0, writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
	}
	return limit, offset, nil
}

// actorFromCtx builds the acting user from verified token claims.
func actorFromCtx(c *fiber.Ctx) service.Actor {
	claims := middleware.ClaimsFromCtx(c)
	if claims == nil {
		return service.Actor{}
	}
	return service.Actor{
		ID:             claims.UserID,
		Username:       claims.Username,
		IsCompanyAdmin: claims.IsCompanyAdmin,
		IsApprover:     claims.IsApprover,
		IsCustodian:    claims.IsCustodian,
	}
}

// metaFromCtx captures the request attributes recorded in the audit trail.
func metaFromCtx(c *fiber.Ctx) service.RequestMeta {
	return service.RequestMeta{
		IPAddress: c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
		Path:      c.Path(),
		Method:    c.Method(),
	}
}

// writeServiceError translates service errors into the standard JSON error
// envelope without leaking internals.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrInvalidStatus):
		return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", "invalid status value")
	case errors.Is(err, service.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "operation not permitted")
	case errors.Is(err, service.ErrInvalidCredentials):
		return writeError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
	case errors.Is(err, service.ErrUserInactive):
		return writeError(c, fiber.StatusUnauthorized, "USER_INACTIVE", "user account is inactive")
	case errors.Is(err, service.ErrUsernameTaken):
		return writeError(c, fiber.StatusConflict, "USERNAME_TAKEN", "username already taken")
	case errors.Is(err, service.ErrAssetNotAvailable):
		return writeError(c, fiber.StatusConflict, "ASSET_NOT_AVAILABLE", "asset is not available for this operation")
	case errors.Is(err, service.ErrWorkflowNotPending):
		return writeError(c, fiber.StatusConflict, "NOT_PENDING", "request is not pending")
	case errors.Is(err, service.ErrWorkflowNotApproved):
		return writeError(c, fiber.StatusConflict, "NOT_APPROVED", "request is not approved")
	case errors.Is(err, service.ErrWorkflowFinal):
		return writeError(c, fiber.StatusConflict, "ALREADY_FINALIZED", "request is already finalized")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
