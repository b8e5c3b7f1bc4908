package postgres

import (
	"context"
	"database/sql"

	"assetz/internal/model"
	"assetz/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, asset_id, document_type, title, storage_path, size, content_type, uploaded_by, created_at`

func scanDocument(row interface{ Scan(...any) error }) (*model.AssetDocument, error) {
	var d model.AssetDocument
	if err := row.Scan(
		&d.ID, &d.AssetID, &d.DocumentType, &d.Title, &d.StoragePath, &d.Size,
		&d.ContentType, &d.UploadedBy, &d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, d *model.AssetDocument) (*model.AssetDocument, error) {
	const q = `
		INSERT INTO asset_documents (id, asset_id, document_type, title, storage_path,
			size, content_type, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		d.ID, d.AssetID, d.DocumentType, d.Title, d.StoragePath, d.Size, d.ContentType,
		d.UploadedBy, d.CreatedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.AssetDocument, error) {
	const q = `SELECT ` + documentColumns + ` FROM asset_documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// ListByAsset returns an asset's documents using LIMIT/OFFSET pagination and a total count.
func (r *DocumentPostgres) ListByAsset(ctx context.Context, assetID string, pq repository.PageQuery) (*repository.PageResult[model.AssetDocument], error) {
	const qCount = `SELECT COUNT(*) FROM asset_documents WHERE asset_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, assetID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + documentColumns + `
		FROM asset_documents
		WHERE asset_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, qList, assetID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AssetDocument, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.AssetDocument]{Items: items, Total: total}, nil
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM asset_documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
