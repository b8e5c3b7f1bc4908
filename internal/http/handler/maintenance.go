package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"assetz/internal/model"
	"assetz/internal/service"
)

type maintenanceTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Description string `json:"description"`
}

type maintenanceRequestBody struct {
	AssetID           string `json:"asset_id" validate:"required,uuid4"`
	MaintenanceTypeID string `json:"maintenance_type_id" validate:"required,uuid4"`
	RequestType       string `json:"request_type" validate:"required,oneof=BREAKDOWN PREVENTIVE CALIBRATION INSPECTION UPGRADE OTHER"`
	Priority          string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	IssueDescription  string `json:"issue_description" validate:"required"`
	ImpactDescription string `json:"impact_description"`
}

type approveMaintenanceRequest struct {
	AssignedTo    *string `json:"assigned_to"`
	VendorID      *string `json:"vendor_id"`
	ScheduledDate *string `json:"scheduled_date"`
}

type rejectMaintenanceRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type completeMaintenanceRequest struct {
	ActualCost      *string `json:"actual_cost"`
	DowntimeHours   *string `json:"downtime_hours"`
	ResolutionNotes string  `json:"resolution_notes"`
}

type scheduleRequest struct {
	AssetID            string  `json:"asset_id" validate:"required,uuid4"`
	MaintenanceTypeID  string  `json:"maintenance_type_id" validate:"required,uuid4"`
	Frequency          string  `json:"frequency" validate:"required,oneof=DAILY WEEKLY MONTHLY QUARTERLY HALF_YEARLY YEARLY CUSTOM"`
	IntervalDays       *int    `json:"interval_days"`
	StartDate          string  `json:"start_date" validate:"required"`
	NextDueDate        *string `json:"next_due_date"`
	AssignedTo         *string `json:"assigned_to"`
	VendorID           *string `json:"vendor_id"`
	EstimatedCost      *string `json:"estimated_cost"`
	SendReminder       bool    `json:"send_reminder"`
	ReminderDaysBefore int     `json:"reminder_days_before"`
}

// CreateMaintenanceType registers a maintenance activity classification.
func CreateMaintenanceType(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req maintenanceTypeRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		t, err := svc.CreateType(c.UserContext(), actorFromCtx(c), metaFromCtx(c), &model.MaintenanceType{
			Name:        req.Name,
			Code:        req.Code,
			Description: req.Description,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

func GetMaintenanceType(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := svc.GetType(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(t)
	}
}

func ListMaintenanceTypes(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		res, err := svc.ListTypes(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateMaintenanceRequest opens a maintenance ticket for an asset.
func CreateMaintenanceRequest(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req maintenanceRequestBody
		if err := parseBody(c, &req); err != nil {
			return err
		}
		r, err := svc.CreateRequest(c.UserContext(), actorFromCtx(c), metaFromCtx(c), service.MaintenanceRequestInput{
			AssetID:           req.AssetID,
			MaintenanceTypeID: req.MaintenanceTypeID,
			RequestType:       req.RequestType,
			Priority:          req.Priority,
			IssueDescription:  req.IssueDescription,
			ImpactDescription: req.ImpactDescription,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(r)
	}
}

func GetMaintenanceRequest(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := svc.GetRequest(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(r)
	}
}

func ListMaintenanceRequests(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		res, err := svc.ListRequests(c.UserContext(), c.Query("status"), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

func ApproveMaintenanceRequest(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req approveMaintenanceRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		scheduled, perr := parseDate(req.ScheduledDate)
		if perr != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid scheduled_date")
		}
		r, err := svc.ApproveRequest(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"), req.AssignedTo, req.VendorID, scheduled)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(r)
	}
}

func RejectMaintenanceRequest(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req rejectMaintenanceRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		r, err := svc.RejectRequest(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"), req.Reason)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(r)
	}
}

func StartMaintenanceRequest(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := svc.StartRequest(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(r)
	}
}

func CompleteMaintenanceRequest(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req completeMaintenanceRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		in := service.CompleteMaintenanceInput{ResolutionNotes: req.ResolutionNotes}
		var perr error
		if in.ActualCost, perr = parseDecimal(req.ActualCost); perr != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "invalid actual_cost")
		}
		if in.DowntimeHours, perr = parseDecimal(req.DowntimeHours); perr != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "invalid downtime_hours")
		}
		r, err := svc.CompleteRequest(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(r)
	}
}

func CancelMaintenanceRequest(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := svc.CancelRequest(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(r)
	}
}

// CreateMaintenanceSchedule registers a preventive maintenance schedule.
func CreateMaintenanceSchedule(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req scheduleRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		start, perr := time.Parse(dateLayout, req.StartDate)
		if perr != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid start_date")
		}
		sch := &model.MaintenanceSchedule{
			AssetID:            req.AssetID,
			MaintenanceTypeID:  req.MaintenanceTypeID,
			Frequency:          req.Frequency,
			IntervalDays:       req.IntervalDays,
			StartDate:          start,
			AssignedTo:         req.AssignedTo,
			VendorID:           req.VendorID,
			SendReminder:       req.SendReminder,
			ReminderDaysBefore: req.ReminderDaysBefore,
		}
		if next, perr := parseDate(req.NextDueDate); perr != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid next_due_date")
		} else if next != nil {
			sch.NextDueDate = *next
		}
		if sch.EstimatedCost, perr = parseDecimal(req.EstimatedCost); perr != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "invalid estimated_cost")
		}
		stored, err := svc.CreateSchedule(c.UserContext(), actorFromCtx(c), metaFromCtx(c), sch)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// UpdateMaintenanceSchedule replaces a schedule's mutable fields.
func UpdateMaintenanceSchedule(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req scheduleRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		start, perr := time.Parse(dateLayout, req.StartDate)
		if perr != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid start_date")
		}
		sch := &model.MaintenanceSchedule{
			ID:                 c.Params("id"),
			AssetID:            req.AssetID,
			MaintenanceTypeID:  req.MaintenanceTypeID,
			Frequency:          req.Frequency,
			IntervalDays:       req.IntervalDays,
			StartDate:          start,
			AssignedTo:         req.AssignedTo,
			VendorID:           req.VendorID,
			SendReminder:       req.SendReminder,
			ReminderDaysBefore: req.ReminderDaysBefore,
		}
		if next, perr := parseDate(req.NextDueDate); perr != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid next_due_date")
		} else if next != nil {
			sch.NextDueDate = *next
		}
		if sch.EstimatedCost, perr = parseDecimal(req.EstimatedCost); perr != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_AMOUNT", "invalid estimated_cost")
		}
		stored, err := svc.UpdateSchedule(c.UserContext(), actorFromCtx(c), metaFromCtx(c), sch)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stored)
	}
}

func GetMaintenanceSchedule(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sch, err := svc.GetSchedule(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sch)
	}
}

func ListMaintenanceSchedules(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		res, err := svc.ListSchedules(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// MarkScheduleDone records a completed occurrence and advances the due date.
func MarkScheduleDone(svc service.MaintenanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sch, err := svc.MarkScheduleDone(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sch)
	}
}
