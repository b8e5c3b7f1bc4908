package repository

import (
	"context"

	"assetz/internal/model"
)

// UserRepository defines data access for user accounts using SQL queries only.
// No business logic here, strictly persistence operations.
type UserRepository interface {
	// Create inserts a new user record and returns the stored row.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns a user by its ID. Soft-deleted users are excluded.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByUsername returns a user by username. Soft-deleted users are excluded.
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// List returns a paginated list of users and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.User], error)

	// Update persists mutable user fields and returns the stored row.
	Update(ctx context.Context, u *model.User) (*model.User, error)

	// SoftDelete marks a user deleted and inactive.
	SoftDelete(ctx context.Context, id string) error
}
