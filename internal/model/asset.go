package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset lifecycle statuses.
const (
	StatusPlanning         = "PLANNING"
	StatusOrdered          = "ORDERED"
	StatusInStock          = "IN_STOCK"
	StatusDeployed         = "DEPLOYED"
	StatusInUse            = "IN_USE"
	StatusUnderMaintenance = "UNDER_MAINTENANCE"
	StatusRetired          = "RETIRED"
	StatusDisposed         = "DISPOSED"
	StatusLost             = "LOST"
	StatusStolen           = "STOLEN"
)

// Asset physical conditions.
const (
	ConditionExcellent  = "EXCELLENT"
	ConditionGood       = "GOOD"
	ConditionFair       = "FAIR"
	ConditionPoor       = "POOR"
	ConditionNotWorking = "NOT_WORKING"
)

// ValidStatuses lists every accepted asset status.
var ValidStatuses = []string{
	StatusPlanning, StatusOrdered, StatusInStock, StatusDeployed, StatusInUse,
	StatusUnderMaintenance, StatusRetired, StatusDisposed, StatusLost, StatusStolen,
}

// Category is an asset classification node; categories can nest via ParentID.
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Description string     `json:"description,omitempty"`
	ParentID    *string    `json:"parent_id,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// Vendor types.
const (
	VendorSupplier        = "SUPPLIER"
	VendorManufacturer    = "MANUFACTURER"
	VendorServiceProvider = "SERVICE_PROVIDER"
	VendorContractor      = "CONTRACTOR"
)

// Vendor is a supplier, manufacturer or service provider.
type Vendor struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Code          string     `json:"code"`
	ContactPerson string     `json:"contact_person,omitempty"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Address       string     `json:"address,omitempty"`
	City          string     `json:"city,omitempty"`
	State         string     `json:"state,omitempty"`
	Country       string     `json:"country,omitempty"`
	PostalCode    string     `json:"postal_code,omitempty"`
	TaxID         string     `json:"tax_id,omitempty"`
	VendorType    string     `json:"vendor_type"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"-"`
}

// Asset is the central inventory record.
type Asset struct {
	ID          string `json:"id"`
	AssetTag    string `json:"asset_tag"`
	QRCode      string `json:"qr_code"`
	QRImageKey  string `json:"qr_image_key,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Make        string `json:"make,omitempty"`
	Model       string `json:"model,omitempty"`
	SerialNo    string `json:"serial_number,omitempty"`

	CategoryID   string  `json:"category_id"`
	VendorID     *string `json:"vendor_id,omitempty"`
	LocationID   *string `json:"location_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	AssignedTo   *string `json:"assigned_to,omitempty"`
	CustodianID  *string `json:"custodian_id,omitempty"`

	Status    string `json:"status"`
	Condition string `json:"condition,omitempty"`

	PurchaseOrderNo string           `json:"purchase_order_number,omitempty"`
	PurchaseDate    *time.Time       `json:"purchase_date,omitempty"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price,omitempty"`
	InvoiceNo       string           `json:"invoice_number,omitempty"`

	WarrantyEndDate *time.Time       `json:"warranty_end_date,omitempty"`
	AMCVendorID     *string          `json:"amc_vendor_id,omitempty"`
	AMCEndDate      *time.Time       `json:"amc_end_date,omitempty"`
	AMCCost         *decimal.Decimal `json:"amc_cost,omitempty"`

	DepreciationRate *decimal.Decimal `json:"depreciation_rate,omitempty"`
	SalvageValue     *decimal.Decimal `json:"salvage_value,omitempty"`
	UsefulLifeYears  *int             `json:"useful_life_years,omitempty"`

	Notes      string     `json:"notes,omitempty"`
	IsCritical bool       `json:"is_critical"`
	IsInsured  bool       `json:"is_insured"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"-"`
}

// IsUnderWarranty reports whether the warranty covers the given day.
func (a *Asset) IsUnderWarranty(now time.Time) bool {
	return a.WarrantyEndDate != nil && !now.After(*a.WarrantyEndDate)
}

// IsUnderAMC reports whether the annual maintenance contract covers the given day.
func (a *Asset) IsUnderAMC(now time.Time) bool {
	return a.AMCEndDate != nil && !now.After(*a.AMCEndDate)
}

// Asset document types.
const (
	DocInvoice       = "INVOICE"
	DocPurchaseOrder = "PURCHASE_ORDER"
	DocWarrantyCard  = "WARRANTY_CARD"
	DocAMCContract   = "AMC_CONTRACT"
	DocUserManual    = "USER_MANUAL"
	DocCertificate   = "CERTIFICATE"
	DocInsurance     = "INSURANCE"
	DocOther         = "OTHER"
)

// AssetDocument is a file attached to an asset, stored in object storage.
type AssetDocument struct {
	ID           string    `json:"id"`
	AssetID      string    `json:"asset_id"`
	DocumentType string    `json:"document_type"`
	Title        string    `json:"title"`
	StoragePath  string    `json:"storage_path"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	UploadedBy   *string   `json:"uploaded_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// History action types.
const (
	ActionCreated       = "CREATED"
	ActionUpdated       = "UPDATED"
	ActionAssigned      = "ASSIGNED"
	ActionTransferred   = "TRANSFERRED"
	ActionReturned      = "RETURNED"
	ActionStatusChanged = "STATUS_CHANGED"
	ActionDisposed      = "DISPOSED"
)

// AssetHistory is an append-only trail of asset movements and changes.
type AssetHistory struct {
	ID             string    `json:"id"`
	AssetID        string    `json:"asset_id"`
	ActionType     string    `json:"action_type"`
	ActionDate     time.Time `json:"action_date"`
	PerformedBy    *string   `json:"performed_by,omitempty"`
	OldValue       string    `json:"old_value,omitempty"`
	NewValue       string    `json:"new_value,omitempty"`
	FromLocationID *string   `json:"from_location_id,omitempty"`
	ToLocationID   *string   `json:"to_location_id,omitempty"`
	FromUserID     *string   `json:"from_user_id,omitempty"`
	ToUserID       *string   `json:"to_user_id,omitempty"`
	Remarks        string    `json:"remarks,omitempty"`
}

// Workflow statuses shared by transfers and disposals.
const (
	WorkflowPending   = "PENDING"
	WorkflowApproved  = "APPROVED"
	WorkflowRejected  = "REJECTED"
	WorkflowCompleted = "COMPLETED"
	WorkflowCancelled = "CANCELLED"
)

// AssetTransfer is a formal request to move an asset between users/locations.
type AssetTransfer struct {
	ID               string     `json:"id"`
	AssetID          string     `json:"asset_id"`
	TransferNumber   string     `json:"transfer_number"`
	FromUserID       *string    `json:"from_user_id,omitempty"`
	FromLocationID   *string    `json:"from_location_id,omitempty"`
	FromDepartmentID *string    `json:"from_department_id,omitempty"`
	ToUserID         *string    `json:"to_user_id,omitempty"`
	ToLocationID     *string    `json:"to_location_id,omitempty"`
	ToDepartmentID   *string    `json:"to_department_id,omitempty"`
	RequestedBy      *string    `json:"requested_by,omitempty"`
	RequestedDate    time.Time  `json:"requested_date"`
	Reason           string     `json:"reason"`
	Status           string     `json:"status"`
	ApprovedBy       *string    `json:"approved_by,omitempty"`
	ApprovalDate     *time.Time `json:"approval_date,omitempty"`
	ApprovalRemarks  string     `json:"approval_remarks,omitempty"`
	CompletedBy      *string    `json:"completed_by,omitempty"`
	CompletedDate    *time.Time `json:"completed_date,omitempty"`
}

// Disposal methods.
const (
	DisposalSell           = "SELL"
	DisposalScrap          = "SCRAP"
	DisposalDonate         = "DONATE"
	DisposalDestroy        = "DESTROY"
	DisposalReturnToVendor = "RETURN_TO_VENDOR"
)

// AssetDisposal is a formal request to write an asset off.
type AssetDisposal struct {
	ID               string           `json:"id"`
	AssetID          string           `json:"asset_id"`
	DisposalNumber   string           `json:"disposal_number"`
	RequestedBy      *string          `json:"requested_by,omitempty"`
	RequestedDate    time.Time        `json:"requested_date"`
	Reason           string           `json:"reason"`
	DisposalMethod   string           `json:"disposal_method"`
	CurrentBookValue *decimal.Decimal `json:"current_book_value,omitempty"`
	DisposalValue    decimal.Decimal  `json:"disposal_value"`
	DisposalCost     decimal.Decimal  `json:"disposal_cost"`
	Status           string           `json:"status"`
	ApprovedBy       *string          `json:"approved_by,omitempty"`
	ApprovalDate     *time.Time       `json:"approval_date,omitempty"`
	ApprovalRemarks  string           `json:"approval_remarks,omitempty"`
	CompletedBy      *string          `json:"completed_by,omitempty"`
	CompletedDate    *time.Time       `json:"completed_date,omitempty"`
	BuyerDetails     string           `json:"buyer_details,omitempty"`
}
