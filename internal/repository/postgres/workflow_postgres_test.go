package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"assetz/internal/model"
	"assetz/internal/repository"
)

func transferRows(tr *model.AssetTransfer) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "asset_id", "transfer_number", "from_user_id", "from_location_id",
		"from_department_id", "to_user_id", "to_location_id", "to_department_id",
		"requested_by", "requested_date", "reason", "status", "approved_by",
		"approval_date", "approval_remarks", "completed_by", "completed_date",
	}).AddRow(
		tr.ID, tr.AssetID, tr.TransferNumber, tr.FromUserID, tr.FromLocationID,
		tr.FromDepartmentID, tr.ToUserID, tr.ToLocationID, tr.ToDepartmentID,
		tr.RequestedBy, tr.RequestedDate, tr.Reason, tr.Status, tr.ApprovedBy,
		tr.ApprovalDate, tr.ApprovalRemarks, tr.CompletedBy, tr.CompletedDate,
	)
}

func testTransfer() *model.AssetTransfer {
	from := "user-1"
	to := "user-2"
	requestedBy := "user-1"
	return &model.AssetTransfer{
		ID:             "tr-1",
		AssetID:        "asset-1",
		TransferNumber: "TRF-20240115-0001",
		FromUserID:     &from,
		ToUserID:       &to,
		RequestedBy:    &requestedBy,
		RequestedDate:  time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		Reason:         "team change",
		Status:         model.WorkflowPending,
	}
}

func TestTransferPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTransferPostgres(db)
	ctx := context.Background()

	tr := testTransfer()
	mock.ExpectQuery("INSERT INTO asset_transfers").
		WithArgs(
			tr.ID, tr.AssetID, tr.TransferNumber, tr.FromUserID, tr.FromLocationID,
			tr.FromDepartmentID, tr.ToUserID, tr.ToLocationID, tr.ToDepartmentID,
			tr.RequestedBy, tr.RequestedDate, tr.Reason, tr.Status,
		).
		WillReturnRows(transferRows(tr))

	got, err := repo.Create(ctx, tr)
	assert.NoError(t, err)
	assert.Equal(t, "TRF-20240115-0001", got.TransferNumber)
	assert.Equal(t, model.WorkflowPending, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTransferPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		tr := testTransfer()
		mock.ExpectQuery("SELECT (.+) FROM asset_transfers WHERE id = ?").
			WithArgs("tr-1").
			WillReturnRows(transferRows(tr))

		got, err := repo.FindByID(ctx, "tr-1")
		assert.NoError(t, err)
		assert.Equal(t, "asset-1", got.AssetID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM asset_transfers WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(ctx, "missing")
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTransferPostgres(db)
	ctx := context.Background()

	t.Run("all statuses", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM asset_transfers").
			WithArgs("").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM asset_transfers").
			WithArgs("", 10, 0).
			WillReturnRows(transferRows(testTransfer()))

		got, err := repo.List(ctx, "", repository.PageQuery{Limit: 10, Offset: 0})
		assert.NoError(t, err)
		assert.Equal(t, 1, got.Total)
		assert.Len(t, got.Items, 1)
	})

	t.Run("status filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM asset_transfers").
			WithArgs(model.WorkflowCompleted).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("SELECT (.+) FROM asset_transfers").
			WithArgs(model.WorkflowCompleted, 10, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		got, err := repo.List(ctx, model.WorkflowCompleted, repository.PageQuery{Limit: 10, Offset: 0})
		assert.NoError(t, err)
		assert.Equal(t, 0, got.Total)
		assert.Empty(t, got.Items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferPostgres_LastNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTransferPostgres(db)
	ctx := context.Background()

	t.Run("existing number", func(t *testing.T) {
		mock.ExpectQuery("SELECT transfer_number FROM asset_transfers").
			WithArgs("TRF-20240115").
			WillReturnRows(sqlmock.NewRows([]string{"transfer_number"}).AddRow("TRF-20240115-0007"))

		n, err := repo.LastNumber(ctx, "TRF-20240115")
		assert.NoError(t, err)
		assert.Equal(t, "TRF-20240115-0007", n)
	})

	t.Run("no rows yields empty string", func(t *testing.T) {
		mock.ExpectQuery("SELECT transfer_number FROM asset_transfers").
			WithArgs("TRF-20240116").
			WillReturnError(sql.ErrNoRows)

		n, err := repo.LastNumber(ctx, "TRF-20240116")
		assert.NoError(t, err)
		assert.Equal(t, "", n)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDisposalPostgres_LastNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDisposalPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT disposal_number FROM asset_disposals").
		WithArgs("DSP-20240115").
		WillReturnRows(sqlmock.NewRows([]string{"disposal_number"}).AddRow("DSP-20240115-0002"))

	n, err := repo.LastNumber(ctx, "DSP-20240115")
	assert.NoError(t, err)
	assert.Equal(t, "DSP-20240115-0002", n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
