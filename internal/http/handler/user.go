package handler

import (
	"github.com/gofiber/fiber/v2"

	"assetz/internal/service"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username       string  `json:"username" validate:"required,min=3,max=150"`
	Email          string  `json:"email" validate:"required,email"`
	FullName       string  `json:"full_name" validate:"required"`
	Password       string  `json:"password" validate:"required,min=8"`
	EmployeeID     string  `json:"employee_id"`
	Designation    string  `json:"designation"`
	Phone          string  `json:"phone"`
	DepartmentID   *string `json:"department_id"`
	LocationID     *string `json:"location_id"`
	IsCompanyAdmin bool    `json:"is_company_admin"`
	IsApprover     bool    `json:"is_asset_approver"`
	IsCustodian    bool    `json:"is_asset_custodian"`
}

type updateUserRequest struct {
	Email          *string `json:"email" validate:"omitempty,email"`
	FullName       *string `json:"full_name"`
	Designation    *string `json:"designation"`
	Phone          *string `json:"phone"`
	DepartmentID   *string `json:"department_id"`
	LocationID     *string `json:"location_id"`
	IsCompanyAdmin *bool   `json:"is_company_admin"`
	IsApprover     *bool   `json:"is_asset_approver"`
	IsCustodian    *bool   `json:"is_asset_custodian"`
}

// Login authenticates a user and returns a signed access token.
func Login(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		res, err := svc.Login(c.UserContext(), metaFromCtx(c), req.Username, req.Password)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// RegisterUser creates a new account. Admin only.
func RegisterUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		u, err := svc.Register(c.UserContext(), actorFromCtx(c), metaFromCtx(c), service.RegisterUserInput{
			Username:       req.Username,
			Email:          req.Email,
			FullName:       req.FullName,
			Password:       req.Password,
			EmployeeID:     req.EmployeeID,
			Designation:    req.Designation,
			Phone:          req.Phone,
			DepartmentID:   req.DepartmentID,
			LocationID:     req.LocationID,
			IsCompanyAdmin: req.IsCompanyAdmin,
			IsApprover:     req.IsApprover,
			IsCustodian:    req.IsCustodian,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// ListUsers returns a paginated user list.
func ListUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetUser returns one user by ID.
func GetUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(u)
	}
}

// UpdateUser patches a user's profile and role flags. Admin only.
func UpdateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateUserRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		u, err := svc.Update(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"), service.UpdateUserInput{
			Email:          req.Email,
			FullName:       req.FullName,
			Designation:    req.Designation,
			Phone:          req.Phone,
			DepartmentID:   req.DepartmentID,
			LocationID:     req.LocationID,
			IsCompanyAdmin: req.IsCompanyAdmin,
			IsApprover:     req.IsApprover,
			IsCustodian:    req.IsCustodian,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(u)
	}
}

// DeactivateUser soft-deletes an account. Admin only.
func DeactivateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Deactivate(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
