package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Maintenance request types.
const (
	MaintBreakdown   = "BREAKDOWN"
	MaintPreventive  = "PREVENTIVE"
	MaintCalibration = "CALIBRATION"
	MaintInspection  = "INSPECTION"
	MaintUpgrade     = "UPGRADE"
	MaintOther       = "OTHER"
)

// Maintenance request priorities.
const (
	PriorityLow      = "LOW"
	PriorityMedium   = "MEDIUM"
	PriorityHigh     = "HIGH"
	PriorityCritical = "CRITICAL"
)

// Maintenance request statuses.
const (
	MaintPending    = "PENDING"
	MaintApproved   = "APPROVED"
	MaintInProgress = "IN_PROGRESS"
	MaintOnHold     = "ON_HOLD"
	MaintCompleted  = "COMPLETED"
	MaintCancelled  = "CANCELLED"
	MaintRejected   = "REJECTED"
)

// MaintenanceType classifies maintenance activities.
type MaintenanceType struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Description string     `json:"description,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// MaintenanceRequest is a breakdown or ad-hoc maintenance ticket.
type MaintenanceRequest struct {
	ID                string           `json:"id"`
	RequestNumber     string           `json:"request_number"`
	AssetID           string           `json:"asset_id"`
	MaintenanceTypeID string           `json:"maintenance_type_id"`
	RequestType       string           `json:"request_type"`
	Priority          string           `json:"priority"`
	Status            string           `json:"status"`
	RequestedBy       *string          `json:"requested_by,omitempty"`
	RequestedDate     time.Time        `json:"requested_date"`
	IssueDescription  string           `json:"issue_description"`
	ImpactDescription string           `json:"impact_description,omitempty"`
	ApprovedBy        *string          `json:"approved_by,omitempty"`
	ApprovedDate      *time.Time       `json:"approved_date,omitempty"`
	AssignedTo        *string          `json:"assigned_to,omitempty"`
	VendorID          *string          `json:"vendor_id,omitempty"`
	ScheduledDate     *time.Time       `json:"scheduled_date,omitempty"`
	StartedDate       *time.Time       `json:"started_date,omitempty"`
	CompletedDate     *time.Time       `json:"completed_date,omitempty"`
	EstimatedCost     *decimal.Decimal `json:"estimated_cost,omitempty"`
	ActualCost        *decimal.Decimal `json:"actual_cost,omitempty"`
	DowntimeHours     *decimal.Decimal `json:"downtime_hours,omitempty"`
	ResolutionNotes   string           `json:"resolution_notes,omitempty"`
	RejectionReason   string           `json:"rejection_reason,omitempty"`
}

// Schedule frequencies.
const (
	FreqDaily      = "DAILY"
	FreqWeekly     = "WEEKLY"
	FreqMonthly    = "MONTHLY"
	FreqQuarterly  = "QUARTERLY"
	FreqHalfYearly = "HALF_YEARLY"
	FreqYearly     = "YEARLY"
	FreqCustom     = "CUSTOM"
)

// MaintenanceSchedule drives preventive maintenance reminders.
type MaintenanceSchedule struct {
	ID                 string           `json:"id"`
	AssetID            string           `json:"asset_id"`
	MaintenanceTypeID  string           `json:"maintenance_type_id"`
	Frequency          string           `json:"frequency"`
	IntervalDays       *int             `json:"interval_days,omitempty"`
	StartDate          time.Time        `json:"start_date"`
	NextDueDate        time.Time        `json:"next_due_date"`
	LastCompletedDate  *time.Time       `json:"last_completed_date,omitempty"`
	AssignedTo         *string          `json:"assigned_to,omitempty"`
	VendorID           *string          `json:"vendor_id,omitempty"`
	EstimatedCost      *decimal.Decimal `json:"estimated_cost,omitempty"`
	IsActive           bool             `json:"is_active"`
	SendReminder       bool             `json:"send_reminder"`
	ReminderDaysBefore int              `json:"reminder_days_before"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// NextInterval returns the number of days between occurrences for the
// schedule's frequency. Custom schedules use IntervalDays.
func (s *MaintenanceSchedule) NextInterval() int {
	switch s.Frequency {
	case FreqDaily:
		return 1
	case FreqWeekly:
		return 7
	case FreqMonthly:
		return 30
	case FreqQuarterly:
		return 91
	case FreqHalfYearly:
		return 182
	case FreqYearly:
		return 365
	case FreqCustom:
		if s.IntervalDays != nil && *s.IntervalDays > 0 {
			return *s.IntervalDays
		}
	}
	return 0
}
