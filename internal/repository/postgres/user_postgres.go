package postgres

import (
	"context"
	"database/sql"

	"assetz/internal/model"
	"assetz/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, username, email, full_name, password_hash, employee_id, designation,
	phone, department_id, location_id, is_company_admin, is_approver, is_custodian,
	is_active, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.PasswordHash, &u.EmployeeID,
		&u.Designation, &u.Phone, &u.DepartmentID, &u.LocationID, &u.IsCompanyAdmin,
		&u.IsApprover, &u.IsCustodian, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (id, username, email, full_name, password_hash, employee_id,
			designation, phone, department_id, location_id, is_company_admin,
			is_approver, is_custodian, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q,
		u.ID, u.Username, u.Email, u.FullName, u.PasswordHash, u.EmployeeID,
		u.Designation, u.Phone, u.DepartmentID, u.LocationID, u.IsCompanyAdmin,
		u.IsApprover, u.IsCustodian, u.IsActive, u.CreatedAt,
	)
	return scanUser(row)
}

// FindByID fetches a single user by its ID, excluding soft-deleted rows.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// FindByUsername fetches a single user by username, excluding soft-deleted rows.
func (r *UserPostgres) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND deleted_at IS NULL`
	return scanUser(r.db.QueryRowContext(ctx, q, username))
}

// List returns users using LIMIT/OFFSET pagination and a total count.
func (r *UserPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.User], error) {
	const qCount = `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + userColumns + `
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY username
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.User]{Items: items, Total: total}, nil
}

// Update persists mutable user fields and returns the stored record.
func (r *UserPostgres) Update(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		UPDATE users
		SET email = $2, full_name = $3, password_hash = $4, employee_id = $5,
			designation = $6, phone = $7, department_id = $8, location_id = $9,
			is_company_admin = $10, is_approver = $11, is_custodian = $12,
			is_active = $13, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q,
		u.ID, u.Email, u.FullName, u.PasswordHash, u.EmployeeID, u.Designation,
		u.Phone, u.DepartmentID, u.LocationID, u.IsCompanyAdmin, u.IsApprover,
		u.IsCustodian, u.IsActive,
	)
	return scanUser(row)
}

// SoftDelete marks a user deleted and inactive. It does not return an error
// if the row does not exist.
func (r *UserPostgres) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE users SET deleted_at = now(), is_active = FALSE, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
