package model

import "time"

// Audit actions.
const (
	AuditCreate  = "CREATE"
	AuditUpdate  = "UPDATE"
	AuditDelete  = "DELETE"
	AuditLogin   = "LOGIN"
	AuditLogout  = "LOGOUT"
	AuditApprove = "APPROVE"
	AuditReject  = "REJECT"
	AuditExport  = "EXPORT"
)

// AuditLog records who did what to which entity. The username is snapshotted
// so the trail survives user deletion.
type AuditLog struct {
	ID            string    `json:"id"`
	UserID        *string   `json:"user_id,omitempty"`
	Username      string    `json:"username"`
	EntityType    string    `json:"entity_type"`
	EntityID      string    `json:"entity_id,omitempty"`
	ObjectRepr    string    `json:"object_repr"`
	Action        string    `json:"action"`
	Description   string    `json:"description"`
	OldValues     string    `json:"old_values,omitempty"`
	NewValues     string    `json:"new_values,omitempty"`
	IPAddress     string    `json:"ip_address,omitempty"`
	UserAgent     string    `json:"user_agent,omitempty"`
	RequestPath   string    `json:"request_path,omitempty"`
	RequestMethod string    `json:"request_method,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
