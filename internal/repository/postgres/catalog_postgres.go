package postgres

import (
	"context"
	"database/sql"

	"assetz/internal/model"
	"assetz/internal/repository"
)

// CategoryPostgres is a PostgreSQL implementation of repository.CategoryRepository.
type CategoryPostgres struct {
	db *sql.DB
}

// NewCategoryPostgres creates a new CategoryPostgres repository.
func NewCategoryPostgres(db *sql.DB) *CategoryPostgres {
	return &CategoryPostgres{db: db}
}

var _ repository.CategoryRepository = (*CategoryPostgres)(nil)

const categoryColumns = `id, name, code, description, parent_id, is_active, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }) (*model.Category, error) {
	var c model.Category
	if err := row.Scan(
		&c.ID, &c.Name, &c.Code, &c.Description, &c.ParentID, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryPostgres) Create(ctx context.Context, c *model.Category) (*model.Category, error) {
	const q = `
		INSERT INTO categories (id, name, code, description, parent_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + categoryColumns
	row := r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.Code, c.Description, c.ParentID, c.IsActive, c.CreatedAt)
	return scanCategory(row)
}

func (r *CategoryPostgres) FindByID(ctx context.Context, id string) (*model.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND deleted_at IS NULL`
	return scanCategory(r.db.QueryRowContext(ctx, q, id))
}

func (r *CategoryPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Category], error) {
	const qCount = `SELECT COUNT(*) FROM categories WHERE deleted_at IS NULL`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + categoryColumns + `
		FROM categories WHERE deleted_at IS NULL ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Category]{Items: items, Total: total}, nil
}

func (r *CategoryPostgres) Update(ctx context.Context, c *model.Category) (*model.Category, error) {
	const q = `
		UPDATE categories
		SET name = $2, code = $3, description = $4, parent_id = $5, is_active = $6, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + categoryColumns
	row := r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.Code, c.Description, c.ParentID, c.IsActive)
	return scanCategory(row)
}

func (r *CategoryPostgres) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE categories SET deleted_at = now(), is_active = FALSE, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// VendorPostgres is a PostgreSQL implementation of repository.VendorRepository.
type VendorPostgres struct {
	db *sql.DB
}

// NewVendorPostgres creates a new VendorPostgres repository.
func NewVendorPostgres(db *sql.DB) *VendorPostgres {
	return &VendorPostgres{db: db}
}

var _ repository.VendorRepository = (*VendorPostgres)(nil)

const vendorColumns = `id, name, code, contact_person, email, phone, address, city, state,
	country, postal_code, tax_id, vendor_type, is_active, created_at, updated_at`

func scanVendor(row interface{ Scan(...any) error }) (*model.Vendor, error) {
	var v model.Vendor
	if err := row.Scan(
		&v.ID, &v.Name, &v.Code, &v.ContactPerson, &v.Email, &v.Phone, &v.Address,
		&v.City, &v.State, &v.Country, &v.PostalCode, &v.TaxID, &v.VendorType,
		&v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorPostgres) Create(ctx context.Context, v *model.Vendor) (*model.Vendor, error) {
	const q = `
		INSERT INTO vendors (id, name, code, contact_person, email, phone, address, city,
			state, country, postal_code, tax_id, vendor_type, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
		RETURNING ` + vendorColumns
	row := r.db.QueryRowContext(ctx, q,
		v.ID, v.Name, v.Code, v.ContactPerson, v.Email, v.Phone, v.Address, v.City,
		v.State, v.Country, v.PostalCode, v.TaxID, v.VendorType, v.IsActive, v.CreatedAt,
	)
	return scanVendor(row)
}

func (r *VendorPostgres) FindByID(ctx context.Context, id string) (*model.Vendor, error) {
	const q = `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1 AND deleted_at IS NULL`
	return scanVendor(r.db.QueryRowContext(ctx, q, id))
}

func (r *VendorPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Vendor], error) {
	const qCount = `SELECT COUNT(*) FROM vendors WHERE deleted_at IS NULL`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + vendorColumns + `
		FROM vendors WHERE deleted_at IS NULL ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Vendor, 0)
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Vendor]{Items: items, Total: total}, nil
}

func (r *VendorPostgres) Update(ctx context.Context, v *model.Vendor) (*model.Vendor, error) {
	const q = `
		UPDATE vendors
		SET name = $2, code = $3, contact_person = $4, email = $5, phone = $6,
			address = $7, city = $8, state = $9, country = $10, postal_code = $11,
			tax_id = $12, vendor_type = $13, is_active = $14, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + vendorColumns
	row := r.db.QueryRowContext(ctx, q,
		v.ID, v.Name, v.Code, v.ContactPerson, v.Email, v.Phone, v.Address, v.City,
		v.State, v.Country, v.PostalCode, v.TaxID, v.VendorType, v.IsActive,
	)
	return scanVendor(row)
}

func (r *VendorPostgres) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE vendors SET deleted_at = now(), is_active = FALSE, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
