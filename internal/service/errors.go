package service

import "errors"

// Errors shared across services. Handlers translate these to HTTP statuses.
var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("record not found")
	ErrReaderNil  = errors.New("reader is nil")

	ErrForbidden          = errors.New("operation not permitted for this user")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrUsernameTaken      = errors.New("username already taken")

	ErrInvalidStatus       = errors.New("invalid status value")
	ErrAssetNotAvailable   = errors.New("asset is not available for this operation")
	ErrWorkflowNotPending  = errors.New("request is not pending")
	ErrWorkflowNotApproved = errors.New("request is not approved")
	ErrWorkflowFinal       = errors.New("request is already finalized")
)
