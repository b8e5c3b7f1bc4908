package postgres

import (
	"context"
	"database/sql"
	"errors"

	"assetz/internal/model"
	"assetz/internal/repository"
)

// TransferPostgres is a PostgreSQL implementation of repository.TransferRepository.
type TransferPostgres struct {
	db *sql.DB
}

// NewTransferPostgres creates a new TransferPostgres repository.
func NewTransferPostgres(db *sql.DB) *TransferPostgres {
	return &TransferPostgres{db: db}
}

var _ repository.TransferRepository = (*TransferPostgres)(nil)

const transferColumns = `id, asset_id, transfer_number, from_user_id, from_location_id,
	from_department_id, to_user_id, to_location_id, to_department_id, requested_by,
	requested_date, reason, status, approved_by, approval_date, approval_remarks,
	completed_by, completed_date`

func scanTransfer(row interface{ Scan(...any) error }) (*model.AssetTransfer, error) {
	var t model.AssetTransfer
	if err := row.Scan(
		&t.ID, &t.AssetID, &t.TransferNumber, &t.FromUserID, &t.FromLocationID,
		&t.FromDepartmentID, &t.ToUserID, &t.ToLocationID, &t.ToDepartmentID,
		&t.RequestedBy, &t.RequestedDate, &t.Reason, &t.Status, &t.ApprovedBy,
		&t.ApprovalDate, &t.ApprovalRemarks, &t.CompletedBy, &t.CompletedDate,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransferPostgres) Create(ctx context.Context, t *model.AssetTransfer) (*model.AssetTransfer, error) {
	const q = `
		INSERT INTO asset_transfers (id, asset_id, transfer_number, from_user_id,
			from_location_id, from_department_id, to_user_id, to_location_id,
			to_department_id, requested_by, requested_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + transferColumns
	row := r.db.QueryRowContext(ctx, q,
		t.ID, t.AssetID, t.TransferNumber, t.FromUserID, t.FromLocationID,
		t.FromDepartmentID, t.ToUserID, t.ToLocationID, t.ToDepartmentID,
		t.RequestedBy, t.RequestedDate, t.Reason, t.Status,
	)
	return scanTransfer(row)
}

func (r *TransferPostgres) FindByID(ctx context.Context, id string) (*model.AssetTransfer, error) {
	const q = `SELECT ` + transferColumns + ` FROM asset_transfers WHERE id = $1`
	return scanTransfer(r.db.QueryRowContext(ctx, q, id))
}

func (r *TransferPostgres) List(ctx context.Context, status string, pq repository.PageQuery) (*repository.PageResult[model.AssetTransfer], error) {
	// Empty status matches everything.
	const qCount = `SELECT COUNT(*) FROM asset_transfers WHERE ($1 = '' OR status = $1)`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, status).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + transferColumns + `
		FROM asset_transfers
		WHERE ($1 = '' OR status = $1)
		ORDER BY requested_date DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, qList, status, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AssetTransfer, 0)
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.AssetTransfer]{Items: items, Total: total}, nil
}

func (r *TransferPostgres) Update(ctx context.Context, t *model.AssetTransfer) (*model.AssetTransfer, error) {
	const q = `
		UPDATE asset_transfers
		SET status = $2, approved_by = $3, approval_date = $4, approval_remarks = $5,
			completed_by = $6, completed_date = $7
		WHERE id = $1
		RETURNING ` + transferColumns
	row := r.db.QueryRowContext(ctx, q,
		t.ID, t.Status, t.ApprovedBy, t.ApprovalDate, t.ApprovalRemarks,
		t.CompletedBy, t.CompletedDate,
	)
	return scanTransfer(row)
}

// LastNumber returns the highest transfer number with the given prefix, or "" when none exists.
func (r *TransferPostgres) LastNumber(ctx context.Context, prefix string) (string, error) {
	const q = `
		SELECT transfer_number FROM asset_transfers
		WHERE transfer_number LIKE $1 || '%'
		ORDER BY transfer_number DESC
		LIMIT 1`
	var n string
	err := r.db.QueryRowContext(ctx, q, prefix).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return n, err
}

// DisposalPostgres is a PostgreSQL implementation of repository.DisposalRepository.
type DisposalPostgres struct {
	db *sql.DB
}

// NewDisposalPostgres creates a new DisposalPostgres repository.
func NewDisposalPostgres(db *sql.DB) *DisposalPostgres {
	return &DisposalPostgres{db: db}
}

var _ repository.DisposalRepository = (*DisposalPostgres)(nil)

const disposalColumns = `id, asset_id, disposal_number, requested_by, requested_date, reason,
	disposal_method, current_book_value, disposal_value, disposal_cost, status, approved_by,
	approval_date, approval_remarks, completed_by, completed_date, buyer_details`

func scanDisposal(row interface{ Scan(...any) error }) (*model.AssetDisposal, error) {
	var d model.AssetDisposal
	if err := row.Scan(
		&d.ID, &d.AssetID, &d.DisposalNumber, &d.RequestedBy, &d.RequestedDate, &d.Reason,
		&d.DisposalMethod, &d.CurrentBookValue, &d.DisposalValue, &d.DisposalCost,
		&d.Status, &d.ApprovedBy, &d.ApprovalDate, &d.ApprovalRemarks, &d.CompletedBy,
		&d.CompletedDate, &d.BuyerDetails,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DisposalPostgres) Create(ctx context.Context, d *model.AssetDisposal) (*model.AssetDisposal, error) {
	const q = `
		INSERT INTO asset_disposals (id, asset_id, disposal_number, requested_by,
			requested_date, reason, disposal_method, current_book_value, disposal_value,
			disposal_cost, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + disposalColumns
	row := r.db.QueryRowContext(ctx, q,
		d.ID, d.AssetID, d.DisposalNumber, d.RequestedBy, d.RequestedDate, d.Reason,
		d.DisposalMethod, d.CurrentBookValue, d.DisposalValue, d.DisposalCost, d.Status,
	)
	return scanDisposal(row)
}

func (r *DisposalPostgres) FindByID(ctx context.Context, id string) (*model.AssetDisposal, error) {
	const q = `SELECT ` + disposalColumns + ` FROM asset_disposals WHERE id = $1`
	return scanDisposal(r.db.QueryRowContext(ctx, q, id))
}

func (r *DisposalPostgres) List(ctx context.Context, status string, pq repository.PageQuery) (*repository.PageResult[model.AssetDisposal], error) {
	const qCount = `SELECT COUNT(*) FROM asset_disposals WHERE ($1 = '' OR status = $1)`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, status).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + disposalColumns + `
		FROM asset_disposals
		WHERE ($1 = '' OR status = $1)
		ORDER BY requested_date DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, qList, status, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AssetDisposal, 0)
	for rows.Next() {
		d, err := scanDisposal(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.AssetDisposal]{Items: items, Total: total}, nil
}

func (r *DisposalPostgres) Update(ctx context.Context, d *model.AssetDisposal) (*model.AssetDisposal, error) {
	const q = `
		UPDATE asset_disposals
		SET status = $2, approved_by = $3, approval_date = $4, approval_remarks = $5,
			completed_by = $6, completed_date = $7, disposal_value = $8, disposal_cost = $9,
			buyer_details = $10
		WHERE id = $1
		RETURNING ` + disposalColumns
	row := r.db.QueryRowContext(ctx, q,
		d.ID, d.Status, d.ApprovedBy, d.ApprovalDate, d.ApprovalRemarks, d.CompletedBy,
		d.CompletedDate, d.DisposalValue, d.DisposalCost, d.BuyerDetails,
	)
	return scanDisposal(row)
}

// LastNumber returns the highest disposal number with the given prefix, or "" when none exists.
func (r *DisposalPostgres) LastNumber(ctx context.Context, prefix string) (string, error) {
	const q = `
		SELECT disposal_number FROM asset_disposals
		WHERE disposal_number LIKE $1 || '%'
		ORDER BY disposal_number DESC
		LIMIT 1`
	var n string
	err := r.db.QueryRowContext(ctx, q, prefix).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return n, err
}
