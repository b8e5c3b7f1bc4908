package handler

import (
	"github.com/gofiber/fiber/v2"

	"assetz/internal/model"
	"assetz/internal/service"
)

type locationRequest struct {
	Name         string  `json:"name" validate:"required"`
	Code         string  `json:"code" validate:"required"`
	AddressLine1 string  `json:"address_line1"`
	AddressLine2 string  `json:"address_line2"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Country      string  `json:"country"`
	PostalCode   string  `json:"postal_code"`
	LocationType string  `json:"location_type" validate:"omitempty,oneof=OFFICE WAREHOUSE FACTORY BRANCH DATA_CENTER OTHER"`
}

type departmentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Code        string  `json:"code" validate:"required"`
	Description string  `json:"description"`
	HeadID      *string `json:"head_id"`
}

func locationFromRequest(req *locationRequest) *model.Location {
	return &model.Location{
		Name:         req.Name,
		Code:         req.Code,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
		LocationType: req.LocationType,
	}
}

// CreateLocation registers a new physical site.
func CreateLocation(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req locationRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		l, err := svc.CreateLocation(c.UserContext(), actorFromCtx(c), metaFromCtx(c), locationFromRequest(&req))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(l)
	}
}

func GetLocation(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l, err := svc.GetLocation(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(l)
	}
}

func ListLocations(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		res, err := svc.ListLocations(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

func UpdateLocation(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req locationRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		l := locationFromRequest(&req)
		l.ID = c.Params("id")
		stored, err := svc.UpdateLocation(c.UserContext(), actorFromCtx(c), metaFromCtx(c), l)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stored)
	}
}

func DeleteLocation(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteLocation(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// CreateDepartment registers a new organizational unit.
func CreateDepartment(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req departmentRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		d, err := svc.CreateDepartment(c.UserContext(), actorFromCtx(c), metaFromCtx(c), &model.Department{
			Name:        req.Name,
			Code:        req.Code,
			Description: req.Description,
			HeadID:      req.HeadID,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(d)
	}
}

func GetDepartment(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.GetDepartment(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

func ListDepartments(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		res, err := svc.ListDepartments(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

func UpdateDepartment(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req departmentRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		d := &model.Department{
			ID:          c.Params("id"),
			Name:        req.Name,
			Code:        req.Code,
			Description: req.Description,
			HeadID:      req.HeadID,
		}
		stored, err := svc.UpdateDepartment(c.UserContext(), actorFromCtx(c), metaFromCtx(c), d)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stored)
	}
}

func DeleteDepartment(svc service.OrgService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteDepartment(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
