package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"assetz/internal/service"
)

type transferRequest struct {
	AssetID        string  `json:"asset_id" validate:"required,uuid4"`
	ToUserID       *string `json:"to_user_id"`
	ToLocationID   *string `json:"to_location_id"`
	ToDepartmentID *string `json:"to_department_id"`
	Reason         string  `json:"reason" validate:"required"`
}

type disposalRequest struct {
	AssetID        string `json:"asset_id" validate:"required,uuid4"`
	DisposalMethod string `json:"disposal_method" validate:"required,oneof=SELL SCRAP DONATE DESTROY RETURN_TO_VENDOR"`
	Reason         string `json:"reason" validate:"required"`
	DisposalValue  string `json:"disposal_value"`
	DisposalCost   string `json:"disposal_cost"`
	BuyerDetails   string `json:"buyer_details"`
}

type approvalRequest struct {
	Remarks string `json:"remarks"`
}

// RequestTransfer opens a transfer workflow for an asset.
func RequestTransfer(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req transferRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		t, err := svc.RequestTransfer(c.UserContext(), actorFromCtx(c), metaFromCtx(c), service.TransferInput{
			AssetID:        req.AssetID,
			ToUserID:       req.ToUserID,
			ToLocationID:   req.ToLocationID,
			ToDepartmentID: req.ToDepartmentID,
			Reason:         req.Reason,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

func GetTransfer(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := svc.GetTransfer(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(t)
	}
}

func ListTransfers(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		res, err := svc.ListTransfers(c.UserContext(), c.Query("status"), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

func ApproveTransfer(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req approvalRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		t, err := svc.ApproveTransfer(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"), req.Remarks)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(t)
	}
}

func RejectTransfer(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req approvalRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		t, err := svc.RejectTransfer(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"), req.Remarks)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(t)
	}
}

func CompleteTransfer(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := svc.CompleteTransfer(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(t)
	}
}

func CancelTransfer(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := svc.CancelTransfer(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(t)
	}
}

// RequestDisposal opens a disposal workflow for an asset.
func RequestDisposal(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req disposalRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		in := service.DisposalInput{
			AssetID:        req.AssetID,
			DisposalMethod: req.DisposalMethod,
			Reason:         req.Reason,
			BuyerDetails:   req.BuyerDetails,
		}
		if req.DisposalValue != "" {
			v, err := decimal.NewFromString(req.DisposalValue)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "invalid disposal_value")
			}
			in.DisposalValue = v
		}
		if req.DisposalCost != "" {
			v, err := decimal.NewFromString(req.DisposalCost)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "invalid disposal_cost")
			}
			in.DisposalCost = v
		}
		d, err := svc.RequestDisposal(c.UserContext(), actorFromCtx(c), metaFromCtx(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(d)
	}
}

func GetDisposal(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.GetDisposal(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

func ListDisposals(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		res, err := svc.ListDisposals(c.UserContext(), c.Query("status"), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

func ApproveDisposal(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req approvalRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		d, err := svc.ApproveDisposal(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"), req.Remarks)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

func RejectDisposal(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req approvalRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		d, err := svc.RejectDisposal(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"), req.Remarks)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

func CompleteDisposal(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.CompleteDisposal(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

func CancelDisposal(svc service.WorkflowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.CancelDisposal(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}
