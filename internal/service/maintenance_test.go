package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"assetz/internal/model"
	repoMocks "assetz/internal/repository/mocks"
)

func newTestMaintenanceService(t *testing.T) (MaintenanceService, *repoMocks.MockMaintenanceRepository, *repoMocks.MockAssetRepository, *repoMocks.MockAuditRepository) {
	t.Helper()
	mRepo := new(repoMocks.MockMaintenanceRepository)
	mAssets := new(repoMocks.MockAssetRepository)
	mAudit := new(repoMocks.MockAuditRepository)
	svc := NewMaintenanceService(mRepo, mAssets, NewAuditService(mAudit))
	return svc, mRepo, mAssets, mAudit
}

func TestMaintenanceService_CreateRequest(t *testing.T) {
	ctx := context.Background()
	actor := Actor{ID: "user-1", Username: "alice"}

	t.Run("happy path assigns a request number", func(t *testing.T) {
		svc, mRepo, mAssets, mAudit := newTestMaintenanceService(t)

		mAssets.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1"}, nil)
		mRepo.On("FindTypeByID", ctx, "type-1").Return(&model.MaintenanceType{ID: "type-1"}, nil)
		mRepo.On("LastRequestNumber", ctx, mock.MatchedBy(func(prefix string) bool {
			return strings.HasPrefix(prefix, "MR")
		})).Return("", nil)
		mRepo.On("CreateRequest", ctx, mock.MatchedBy(func(r *model.MaintenanceRequest) bool {
			return r.Status == model.MaintPending &&
				r.Priority == model.PriorityMedium &&
				strings.HasPrefix(r.RequestNumber, "MR") &&
				strings.HasSuffix(r.RequestNumber, "0001")
		})).Return(&model.MaintenanceRequest{ID: "req-1", Status: model.MaintPending}, nil)
		mAudit.On("Insert", ctx, mock.Anything).Return(nil)

		r, err := svc.CreateRequest(ctx, actor, RequestMeta{}, MaintenanceRequestInput{
			AssetID:           "asset-1",
			MaintenanceTypeID: "type-1",
			RequestType:       model.MaintBreakdown,
			IssueDescription:  "screen flickers",
		})
		require.NoError(t, err)
		assert.Equal(t, "req-1", r.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("unknown asset", func(t *testing.T) {
		svc, _, mAssets, _ := newTestMaintenanceService(t)

		mAssets.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		r, err := svc.CreateRequest(ctx, actor, RequestMeta{}, MaintenanceRequestInput{AssetID: "missing", MaintenanceTypeID: "type-1"})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, r)
	})

	t.Run("unknown maintenance type", func(t *testing.T) {
		svc, mRepo, mAssets, _ := newTestMaintenanceService(t)

		mAssets.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1"}, nil)
		mRepo.On("FindTypeByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		r, err := svc.CreateRequest(ctx, actor, RequestMeta{}, MaintenanceRequestInput{AssetID: "asset-1", MaintenanceTypeID: "missing"})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, r)
	})
}

func TestMaintenanceService_ApproveRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("approver assigns technician and schedule", func(t *testing.T) {
		svc, mRepo, _, mAudit := newTestMaintenanceService(t)

		tech := "tech-1"
		when := time.Now().UTC().AddDate(0, 0, 2)
		mRepo.On("FindRequestByID", ctx, "req-1").Return(&model.MaintenanceRequest{ID: "req-1", Status: model.MaintPending}, nil)
		mRepo.On("UpdateRequest", ctx, mock.MatchedBy(func(r *model.MaintenanceRequest) bool {
			return r.Status == model.MaintApproved &&
				r.AssignedTo != nil && *r.AssignedTo == "tech-1" &&
				r.ScheduledDate != nil
		})).Return(&model.MaintenanceRequest{ID: "req-1", Status: model.MaintApproved}, nil)
		mAudit.On("Insert", ctx, mock.Anything).Return(nil)

		r, err := svc.ApproveRequest(ctx, approver, RequestMeta{}, "req-1", &tech, nil, &when)
		require.NoError(t, err)
		assert.Equal(t, model.MaintApproved, r.Status)
	})

	t.Run("non-approver forbidden", func(t *testing.T) {
		svc, _, _, _ := newTestMaintenanceService(t)

		r, err := svc.ApproveRequest(ctx, requester, RequestMeta{}, "req-1", nil, nil, nil)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Nil(t, r)
	})

	t.Run("not pending", func(t *testing.T) {
		svc, mRepo, _, _ := newTestMaintenanceService(t)

		mRepo.On("FindRequestByID", ctx, "req-1").Return(&model.MaintenanceRequest{ID: "req-1", Status: model.MaintCompleted}, nil)

		r, err := svc.ApproveRequest(ctx, approver, RequestMeta{}, "req-1", nil, nil, nil)
		assert.ErrorIs(t, err, ErrWorkflowNotPending)
		assert.Nil(t, r)
	})
}

func TestMaintenanceService_StartRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the asset under maintenance", func(t *testing.T) {
		svc, mRepo, mAssets, mAudit := newTestMaintenanceService(t)

		mRepo.On("FindRequestByID", ctx, "req-1").Return(&model.MaintenanceRequest{
			ID: "req-1", AssetID: "asset-1", RequestNumber: "MR202401150001", Status: model.MaintApproved,
		}, nil)
		mAssets.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1", Status: model.StatusInUse}, nil)
		mAssets.On("Update", ctx, mock.MatchedBy(func(a *model.Asset) bool {
			return a.Status == model.StatusUnderMaintenance
		})).Return(&model.Asset{ID: "asset-1", Status: model.StatusUnderMaintenance}, nil)
		mAssets.On("AppendHistory", ctx, mock.MatchedBy(func(h *model.AssetHistory) bool {
			return h.ActionType == model.ActionStatusChanged && h.Remarks == "MR202401150001"
		})).Return(nil)
		mRepo.On("UpdateRequest", ctx, mock.MatchedBy(func(r *model.MaintenanceRequest) bool {
			return r.Status == model.MaintInProgress && r.StartedDate != nil
		})).Return(&model.MaintenanceRequest{ID: "req-1", Status: model.MaintInProgress}, nil)
		mAudit.On("Insert", ctx, mock.Anything).Return(nil)

		r, err := svc.StartRequest(ctx, requester, RequestMeta{}, "req-1")
		require.NoError(t, err)
		assert.Equal(t, model.MaintInProgress, r.Status)
		mAssets.AssertExpectations(t)
	})

	t.Run("rejects unapproved request", func(t *testing.T) {
		svc, mRepo, _, _ := newTestMaintenanceService(t)

		mRepo.On("FindRequestByID", ctx, "req-1").Return(&model.MaintenanceRequest{ID: "req-1", Status: model.MaintPending}, nil)

		r, err := svc.StartRequest(ctx, requester, RequestMeta{}, "req-1")
		assert.ErrorIs(t, err, ErrWorkflowNotApproved)
		assert.Nil(t, r)
	})
}

func TestMaintenanceService_CompleteRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the asset to service", func(t *testing.T) {
		svc, mRepo, mAssets, mAudit := newTestMaintenanceService(t)

		mRepo.On("FindRequestByID", ctx, "req-1").Return(&model.MaintenanceRequest{
			ID: "req-1", AssetID: "asset-1", RequestNumber: "MR202401150001", Status: model.MaintInProgress,
		}, nil)
		mAssets.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1", Status: model.StatusUnderMaintenance}, nil)
		mAssets.On("Update", ctx, mock.MatchedBy(func(a *model.Asset) bool {
			return a.Status == model.StatusInUse
		})).Return(&model.Asset{ID: "asset-1", Status: model.StatusInUse}, nil)
		mAssets.On("AppendHistory", ctx, mock.Anything).Return(nil)
		mRepo.On("UpdateRequest", ctx, mock.MatchedBy(func(r *model.MaintenanceRequest) bool {
			return r.Status == model.MaintCompleted &&
				r.CompletedDate != nil &&
				r.ActualCost != nil &&
				r.ResolutionNotes == "replaced panel"
		})).Return(&model.MaintenanceRequest{ID: "req-1", Status: model.MaintCompleted}, nil)
		mAudit.On("Insert", ctx, mock.Anything).Return(nil)

		r, err := svc.CompleteRequest(ctx, requester, RequestMeta{}, "req-1", CompleteMaintenanceInput{
			ActualCost:      dec("120.50"),
			DowntimeHours:   dec("4"),
			ResolutionNotes: "replaced panel",
		})
		require.NoError(t, err)
		assert.Equal(t, model.MaintCompleted, r.Status)
		mAssets.AssertExpectations(t)
	})

	t.Run("leaves asset untouched when not under maintenance", func(t *testing.T) {
		svc, mRepo, mAssets, mAudit := newTestMaintenanceService(t)

		mRepo.On("FindRequestByID", ctx, "req-1").Return(&model.MaintenanceRequest{
			ID: "req-1", AssetID: "asset-1", Status: model.MaintOnHold,
		}, nil)
		mAssets.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1", Status: model.StatusInStock}, nil)
		mRepo.On("UpdateRequest", ctx, mock.Anything).Return(&model.MaintenanceRequest{ID: "req-1", Status: model.MaintCompleted}, nil)
		mAudit.On("Insert", ctx, mock.Anything).Return(nil)

		_, err := svc.CompleteRequest(ctx, requester, RequestMeta{}, "req-1", CompleteMaintenanceInput{})
		require.NoError(t, err)
		mAssets.AssertNotCalled(t, "Update", ctx, mock.Anything)
	})

	t.Run("rejects pending request", func(t *testing.T) {
		svc, mRepo, _, _ := newTestMaintenanceService(t)

		mRepo.On("FindRequestByID", ctx, "req-1").Return(&model.MaintenanceRequest{ID: "req-1", Status: model.MaintPending}, nil)

		r, err := svc.CompleteRequest(ctx, requester, RequestMeta{}, "req-1", CompleteMaintenanceInput{})
		assert.ErrorIs(t, err, ErrWorkflowNotApproved)
		assert.Nil(t, r)
	})
}

func TestMaintenanceService_CancelRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels approved request", func(t *testing.T) {
		svc, mRepo, _, mAudit := newTestMaintenanceService(t)

		mRepo.On("FindRequestByID", ctx, "req-1").Return(&model.MaintenanceRequest{ID: "req-1", Status: model.MaintApproved}, nil)
		mRepo.On("UpdateRequest", ctx, mock.MatchedBy(func(r *model.MaintenanceRequest) bool {
			return r.Status == model.MaintCancelled
		})).Return(&model.MaintenanceRequest{ID: "req-1", Status: model.MaintCancelled}, nil)
		mAudit.On("Insert", ctx, mock.Anything).Return(nil)

		r, err := svc.CancelRequest(ctx, requester, RequestMeta{}, "req-1")
		require.NoError(t, err)
		assert.Equal(t, model.MaintCancelled, r.Status)
	})

	t.Run("cannot cancel completed request", func(t *testing.T) {
		svc, mRepo, _, _ := newTestMaintenanceService(t)

		mRepo.On("FindRequestByID", ctx, "req-1").Return(&model.MaintenanceRequest{ID: "req-1", Status: model.MaintCompleted}, nil)

		r, err := svc.CancelRequest(ctx, requester, RequestMeta{}, "req-1")
		assert.ErrorIs(t, err, ErrWorkflowFinal)
		assert.Nil(t, r)
	})
}

func TestMaintenanceService_CreateSchedule(t *testing.T) {
	ctx := context.Background()
	actor := Actor{ID: "user-1", Username: "alice"}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("defaults next due date from frequency", func(t *testing.T) {
		svc, mRepo, mAssets, mAudit := newTestMaintenanceService(t)

		mAssets.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1"}, nil)
		mRepo.On("CreateSchedule", ctx, mock.MatchedBy(func(sch *model.MaintenanceSchedule) bool {
			return sch.IsActive && sch.NextDueDate.Equal(start.AddDate(0, 0, 30))
		})).Return(&model.MaintenanceSchedule{ID: "sch-1"}, nil)
		mAudit.On("Insert", ctx, mock.Anything).Return(nil)

		sch, err := svc.CreateSchedule(ctx, actor, RequestMeta{}, &model.MaintenanceSchedule{
			AssetID:   "asset-1",
			Frequency: model.FreqMonthly,
			StartDate: start,
		})
		require.NoError(t, err)
		assert.Equal(t, "sch-1", sch.ID)
	})

	t.Run("rejects custom frequency without interval", func(t *testing.T) {
		svc, _, mAssets, _ := newTestMaintenanceService(t)

		mAssets.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1"}, nil)

		sch, err := svc.CreateSchedule(ctx, actor, RequestMeta{}, &model.MaintenanceSchedule{
			AssetID:   "asset-1",
			Frequency: model.FreqCustom,
			StartDate: start,
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, sch)
	})
}

func TestMaintenanceService_MarkScheduleDone(t *testing.T) {
	ctx := context.Background()
	actor := Actor{ID: "user-1", Username: "alice"}

	svc, mRepo, _, mAudit := newTestMaintenanceService(t)

	mRepo.On("FindScheduleByID", ctx, "sch-1").Return(&model.MaintenanceSchedule{
		ID: "sch-1", AssetID: "asset-1", Frequency: model.FreqWeekly,
	}, nil)
	mRepo.On("UpdateSchedule", ctx, mock.MatchedBy(func(sch *model.MaintenanceSchedule) bool {
		return sch.LastCompletedDate != nil && sch.NextDueDate.After(time.Now().UTC().AddDate(0, 0, 6))
	})).Return(&model.MaintenanceSchedule{ID: "sch-1"}, nil)
	mAudit.On("Insert", ctx, mock.Anything).Return(nil)

	sch, err := svc.MarkScheduleDone(ctx, actor, RequestMeta{}, "sch-1")
	require.NoError(t, err)
	assert.Equal(t, "sch-1", sch.ID)
	mRepo.AssertExpectations(t)
}

func TestMaintenanceService_DueSchedules(t *testing.T) {
	ctx := context.Background()
	svc, mRepo, _, _ := newTestMaintenanceService(t)

	cutoff := time.Now().UTC().AddDate(0, 0, 7)
	mRepo.On("DueSchedules", ctx, cutoff).Return([]model.MaintenanceSchedule{{ID: "sch-1"}}, nil)

	due, err := svc.DueSchedules(ctx, cutoff)
	require.NoError(t, err)
	assert.Len(t, due, 1)
}
