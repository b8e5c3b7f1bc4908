package postgres

import (
	"context"
	"database/sql"

	"assetz/internal/model"
	"assetz/internal/repository"
)

// LocationPostgres is a PostgreSQL implementation of repository.LocationRepository.
type LocationPostgres struct {
	db *sql.DB
}

// NewLocationPostgres creates a new LocationPostgres repository.
func NewLocationPostgres(db *sql.DB) *LocationPostgres {
	return &LocationPostgres{db: db}
}

var _ repository.LocationRepository = (*LocationPostgres)(nil)

const locationColumns = `id, name, code, address_line1, address_line2, city, state, country,
	postal_code, location_type, is_active, created_at, updated_at`

func scanLocation(row interface{ Scan(...any) error }) (*model.Location, error) {
	var l model.Location
	if err := row.Scan(
		&l.ID, &l.Name, &l.Code, &l.AddressLine1, &l.AddressLine2, &l.City, &l.State,
		&l.Country, &l.PostalCode, &l.LocationType, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LocationPostgres) Create(ctx context.Context, l *model.Location) (*model.Location, error) {
	const q = `
		INSERT INTO locations (id, name, code, address_line1, address_line2, city, state,
			country, postal_code, location_type, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING ` + locationColumns
	row := r.db.QueryRowContext(ctx, q,
		l.ID, l.Name, l.Code, l.AddressLine1, l.AddressLine2, l.City, l.State,
		l.Country, l.PostalCode, l.LocationType, l.IsActive, l.CreatedAt,
	)
	return scanLocation(row)
}

func (r *LocationPostgres) FindByID(ctx context.Context, id string) (*model.Location, error) {
	const q = `SELECT ` + locationColumns + ` FROM locations WHERE id = $1 AND deleted_at IS NULL`
	return scanLocation(r.db.QueryRowContext(ctx, q, id))
}

func (r *LocationPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Location], error) {
	const qCount = `SELECT COUNT(*) FROM locations WHERE deleted_at IS NULL`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + locationColumns + `
		FROM locations WHERE deleted_at IS NULL ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Location, 0)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Location]{Items: items, Total: total}, nil
}

func (r *LocationPostgres) Update(ctx context.Context, l *model.Location) (*model.Location, error) {
	const q = `
		UPDATE locations
		SET name = $2, code = $3, address_line1 = $4, address_line2 = $5, city = $6,
			state = $7, country = $8, postal_code = $9, location_type = $10,
			is_active = $11, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + locationColumns
	row := r.db.QueryRowContext(ctx, q,
		l.ID, l.Name, l.Code, l.AddressLine1, l.AddressLine2, l.City, l.State,
		l.Country, l.PostalCode, l.LocationType, l.IsActive,
	)
	return scanLocation(row)
}

func (r *LocationPostgres) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE locations SET deleted_at = now(), is_active = FALSE, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// DepartmentPostgres is a PostgreSQL implementation of repository.DepartmentRepository.
type DepartmentPostgres struct {
	db *sql.DB
}

// NewDepartmentPostgres creates a new DepartmentPostgres repository.
func NewDepartmentPostgres(db *sql.DB) *DepartmentPostgres {
	return &DepartmentPostgres{db: db}
}

var _ repository.DepartmentRepository = (*DepartmentPostgres)(nil)

const departmentColumns = `id, name, code, description, head_id, is_active, created_at, updated_at`

func scanDepartment(row interface{ Scan(...any) error }) (*model.Department, error) {
	var d model.Department
	if err := row.Scan(
		&d.ID, &d.Name, &d.Code, &d.Description, &d.HeadID, &d.IsActive,
		&d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentPostgres) Create(ctx context.Context, d *model.Department) (*model.Department, error) {
	const q = `
		INSERT INTO departments (id, name, code, description, head_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + departmentColumns
	row := r.db.QueryRowContext(ctx, q, d.ID, d.Name, d.Code, d.Description, d.HeadID, d.IsActive, d.CreatedAt)
	return scanDepartment(row)
}

func (r *DepartmentPostgres) FindByID(ctx context.Context, id string) (*model.Department, error) {
	const q = `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1 AND deleted_at IS NULL`
	return scanDepartment(r.db.QueryRowContext(ctx, q, id))
}

func (r *DepartmentPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Department], error) {
	const qCount = `SELECT COUNT(*) FROM departments WHERE deleted_at IS NULL`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + departmentColumns + `
		FROM departments WHERE deleted_at IS NULL ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Department]{Items: items, Total: total}, nil
}

func (r *DepartmentPostgres) Update(ctx context.Context, d *model.Department) (*model.Department, error) {
	const q = `
		UPDATE departments
		SET name = $2, code = $3, description = $4, head_id = $5, is_active = $6, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + departmentColumns
	row := r.db.QueryRowContext(ctx, q, d.ID, d.Name, d.Code, d.Description, d.HeadID, d.IsActive)
	return scanDepartment(row)
}

func (r *DepartmentPostgres) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE departments SET deleted_at = now(), is_active = FALSE, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
