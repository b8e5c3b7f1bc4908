package model

import "time"

// User is an application account. PasswordHash is never serialized.
type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	PasswordHash   string     `json:"-"`
	EmployeeID     string     `json:"employee_id,omitempty"`
	Designation    string     `json:"designation,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	DepartmentID   *string    `json:"department_id,omitempty"`
	LocationID     *string    `json:"location_id,omitempty"`
	IsCompanyAdmin bool       `json:"is_company_admin"`
	IsApprover     bool       `json:"is_asset_approver"`
	IsCustodian    bool       `json:"is_asset_custodian"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"-"`
}
