package handler

import (
	"github.com/gofiber/fiber/v2"

	"assetz/internal/model"
	"assetz/internal/service"
)

type categoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Code        string  `json:"code" validate:"required"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id"`
}

type vendorRequest struct {
	Name          string `json:"name" validate:"required"`
	Code          string `json:"code" validate:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	PostalCode    string `json:"postal_code"`
	TaxID         string `json:"tax_id"`
	VendorType    string `json:"vendor_type" validate:"omitempty,oneof=SUPPLIER MANUFACTURER SERVICE_PROVIDER CONTRACTOR"`
}

func vendorFromRequest(req *vendorRequest) *model.Vendor {
	return &model.Vendor{
		Name:          req.Name,
		Code:          req.Code,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		PostalCode:    req.PostalCode,
		TaxID:         req.TaxID,
		VendorType:    req.VendorType,
	}
}

func CreateCategory(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req categoryRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		cat, err := svc.CreateCategory(c.UserContext(), actorFromCtx(c), metaFromCtx(c), &model.Category{
			Name:        req.Name,
			Code:        req.Code,
			Description: req.Description,
			ParentID:    req.ParentID,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(cat)
	}
}

func GetCategory(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cat, err := svc.GetCategory(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cat)
	}
}

func ListCategories(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		res, err := svc.ListCategories(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

func UpdateCategory(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req categoryRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		cat := &model.Category{
			ID:          c.Params("id"),
			Name:        req.Name,
			Code:        req.Code,
			Description: req.Description,
			ParentID:    req.ParentID,
		}
		stored, err := svc.UpdateCategory(c.UserContext(), actorFromCtx(c), metaFromCtx(c), cat)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stored)
	}
}

func DeleteCategory(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteCategory(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func CreateVendor(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req vendorRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		v, err := svc.CreateVendor(c.UserContext(), actorFromCtx(c), metaFromCtx(c), vendorFromRequest(&req))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(v)
	}
}

func GetVendor(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.GetVendor(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

func ListVendors(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		res, err := svc.ListVendors(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

func UpdateVendor(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req vendorRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		v := vendorFromRequest(&req)
		v.ID = c.Params("id")
		stored, err := svc.UpdateVendor(c.UserContext(), actorFromCtx(c), metaFromCtx(c), v)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stored)
	}
}

func DeleteVendor(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteVendor(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
