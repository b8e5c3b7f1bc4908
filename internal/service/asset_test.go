package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"assetz/internal/model"
	"assetz/internal/repository"
	repoMocks "assetz/internal/repository/mocks"
	"assetz/internal/storage"
	storeMocks "assetz/internal/storage/mocks"
)

func newTestAssetService(t *testing.T) (AssetService, *repoMocks.MockAssetRepository, *storeMocks.MockStorage, *repoMocks.MockAuditRepository) {
	t.Helper()
	mRepo := new(repoMocks.MockAssetRepository)
	mStore := new(storeMocks.MockStorage)
	mAudit := new(repoMocks.MockAuditRepository)
	svc := NewAssetService(mRepo, mStore, NewAuditService(mAudit))
	return svc, mRepo, mStore, mAudit
}

func TestAssetService_Create(t *testing.T) {
	ctx := context.Background()
	actor := Actor{ID: "user-1", Username: "alice"}

	t.Run("happy path generates qr image and history", func(t *testing.T) {
		svc, mRepo, mStore, mAudit := newTestAssetService(t)

		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "qrcodes/") && strings.HasSuffix(key, ".png")
		}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.ContentType == "image/png" && opt.Size > 0
		})).Return(storage.ObjectInfo{}, nil)

		mRepo.On("Create", ctx, mock.MatchedBy(func(a *model.Asset) bool {
			return a.ID != "" && a.QRCode != "" && strings.HasPrefix(a.QRImageKey, "qrcodes/") && a.Status == model.StatusInStock
		})).Return(&model.Asset{ID: "asset-1", AssetTag: "IT-001", Status: model.StatusInStock}, nil)
		mRepo.On("AppendHistory", ctx, mock.MatchedBy(func(h *model.AssetHistory) bool {
			return h.AssetID == "asset-1" && h.ActionType == model.ActionCreated
		})).Return(nil)
		mAudit.On("Insert", ctx, mock.MatchedBy(func(e *model.AuditLog) bool {
			return e.Action == model.AuditCreate && e.EntityType == "asset"
		})).Return(nil)

		a, err := svc.Create(ctx, actor, RequestMeta{}, &model.Asset{AssetTag: "IT-001", Name: "Laptop", CategoryID: "cat-1"})
		require.NoError(t, err)
		assert.Equal(t, "asset-1", a.ID)

		mRepo.AssertExpectations(t)
		mStore.AssertExpectations(t)
		mAudit.AssertExpectations(t)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc, _, _, _ := newTestAssetService(t)

		a, err := svc.Create(ctx, actor, RequestMeta{}, &model.Asset{Status: "BROKEN"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, a)
	})

	t.Run("storage error", func(t *testing.T) {
		svc, _, mStore, _ := newTestAssetService(t)

		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("storage fail"))

		a, err := svc.Create(ctx, actor, RequestMeta{}, &model.Asset{AssetTag: "IT-001"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "upload qr image: storage fail")
		assert.Nil(t, a)
	})

	t.Run("db error rolls back uploaded qr image", func(t *testing.T) {
		svc, mRepo, mStore, _ := newTestAssetService(t)

		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, nil)
		mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
		mStore.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "qrcodes/")
		})).Return(nil)

		a, err := svc.Create(ctx, actor, RequestMeta{}, &model.Asset{AssetTag: "IT-001"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "db save failed: db fail")
		assert.Nil(t, a)
		mStore.AssertExpectations(t)
	})
}

func TestAssetService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAssetService(t)
		mRepo.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1"}, nil)

		a, err := svc.Get(ctx, "asset-1")
		require.NoError(t, err)
		assert.Equal(t, "asset-1", a.ID)
	})

	t.Run("empty id", func(t *testing.T) {
		svc, _, _, _ := newTestAssetService(t)
		a, err := svc.Get(ctx, "")
		assert.ErrorIs(t, err, ErrIDRequired)
		assert.Nil(t, a)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAssetService(t)
		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		a, err := svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, a)
	})
}

func TestAssetService_GetByQRCode(t *testing.T) {
	ctx := context.Background()
	svc, mRepo, _, _ := newTestAssetService(t)

	mRepo.On("FindByQRCode", ctx, "qr-1").Return(&model.Asset{ID: "asset-1", QRCode: "qr-1"}, nil)

	a, err := svc.GetByQRCode(ctx, "qr-1")
	require.NoError(t, err)
	assert.Equal(t, "asset-1", a.ID)
}

func TestAssetService_Assign(t *testing.T) {
	ctx := context.Background()
	actor := Actor{ID: "admin-id", Username: "admin"}

	t.Run("assigns from stock", func(t *testing.T) {
		svc, mRepo, _, mAudit := newTestAssetService(t)

		mRepo.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1", Status: model.StatusInStock}, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(a *model.Asset) bool {
			return a.Status == model.StatusInUse && a.AssignedTo != nil && *a.AssignedTo == "user-2"
		})).Return(&model.Asset{ID: "asset-1", Status: model.StatusInUse}, nil)
		mRepo.On("AppendHistory", ctx, mock.MatchedBy(func(h *model.AssetHistory) bool {
			return h.ActionType == model.ActionAssigned && h.ToUserID != nil && *h.ToUserID == "user-2"
		})).Return(nil)
		mAudit.On("Insert", ctx, mock.Anything).Return(nil)

		a, err := svc.Assign(ctx, actor, RequestMeta{}, "asset-1", "user-2", "initial issue")
		require.NoError(t, err)
		assert.Equal(t, model.StatusInUse, a.Status)
		mRepo.AssertExpectations(t)
	})

	t.Run("rejects disposed asset", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAssetService(t)

		mRepo.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1", Status: model.StatusDisposed}, nil)

		a, err := svc.Assign(ctx, actor, RequestMeta{}, "asset-1", "user-2", "")
		assert.ErrorIs(t, err, ErrAssetNotAvailable)
		assert.Nil(t, a)
	})
}

func TestAssetService_Return(t *testing.T) {
	ctx := context.Background()
	actor := Actor{ID: "admin-id", Username: "admin"}

	t.Run("returns to stock", func(t *testing.T) {
		svc, mRepo, _, mAudit := newTestAssetService(t)

		holder := "user-2"
		mRepo.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1", Status: model.StatusInUse, AssignedTo: &holder}, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(a *model.Asset) bool {
			return a.Status == model.StatusInStock && a.AssignedTo == nil
		})).Return(&model.Asset{ID: "asset-1", Status: model.StatusInStock}, nil)
		mRepo.On("AppendHistory", ctx, mock.MatchedBy(func(h *model.AssetHistory) bool {
			return h.ActionType == model.ActionReturned && h.FromUserID != nil && *h.FromUserID == "user-2"
		})).Return(nil)
		mAudit.On("Insert", ctx, mock.Anything).Return(nil)

		a, err := svc.Return(ctx, actor, RequestMeta{}, "asset-1", "back to store")
		require.NoError(t, err)
		assert.Equal(t, model.StatusInStock, a.Status)
		mRepo.AssertExpectations(t)
	})

	t.Run("rejects unassigned asset", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAssetService(t)

		mRepo.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1", Status: model.StatusInStock}, nil)

		a, err := svc.Return(ctx, actor, RequestMeta{}, "asset-1", "")
		assert.ErrorIs(t, err, ErrAssetNotAvailable)
		assert.Nil(t, a)
	})
}

func TestAssetService_ChangeStatus(t *testing.T) {
	ctx := context.Background()
	actor := Actor{ID: "admin-id", Username: "admin"}

	t.Run("records old and new status", func(t *testing.T) {
		svc, mRepo, _, mAudit := newTestAssetService(t)

		mRepo.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1", Status: model.StatusInStock}, nil)
		mRepo.On("Update", ctx, mock.Anything).Return(&model.Asset{ID: "asset-1", Status: model.StatusRetired}, nil)
		mRepo.On("AppendHistory", ctx, mock.MatchedBy(func(h *model.AssetHistory) bool {
			return h.ActionType == model.ActionStatusChanged && h.OldValue == model.StatusInStock && h.NewValue == model.StatusRetired
		})).Return(nil)
		mAudit.On("Insert", ctx, mock.Anything).Return(nil)

		a, err := svc.ChangeStatus(ctx, actor, RequestMeta{}, "asset-1", model.StatusRetired, "end of life")
		require.NoError(t, err)
		assert.Equal(t, model.StatusRetired, a.Status)
		mRepo.AssertExpectations(t)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc, _, _, _ := newTestAssetService(t)

		a, err := svc.ChangeStatus(ctx, actor, RequestMeta{}, "asset-1", "BROKEN", "")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, a)
	})
}

func TestAssetService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by status", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAssetService(t)

		f := repository.AssetFilter{Status: model.StatusInUse}
		mRepo.On("List", ctx, f, repository.PageQuery{Limit: 10, Offset: 0}).
			Return(&repository.PageResult[model.Asset]{Items: []model.Asset{{ID: "1"}}, Total: 1}, nil)

		res, err := svc.List(ctx, f, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("rejects invalid status filter", func(t *testing.T) {
		svc, _, _, _ := newTestAssetService(t)

		res, err := svc.List(ctx, repository.AssetFilter{Status: "BROKEN"}, 10, 0)
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, res)
	})
}

func TestAssetService_BookValue(t *testing.T) {
	ctx := context.Background()

	t.Run("computed for depreciable asset", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAssetService(t)

		purchased := time.Now().UTC().AddDate(-1, 0, 0)
		mRepo.On("FindByID", ctx, "asset-1").Return(&model.Asset{
			ID:              "asset-1",
			PurchaseDate:    &purchased,
			PurchasePrice:   dec("1000"),
			UsefulLifeYears: intPtr(4),
		}, nil)

		res, err := svc.BookValue(ctx, "asset-1")
		require.NoError(t, err)
		assert.Equal(t, "asset-1", res.Asset.ID)
		assert.NotEmpty(t, res.BookValue)
	})

	t.Run("empty for asset without purchase data", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAssetService(t)

		mRepo.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1"}, nil)

		res, err := svc.BookValue(ctx, "asset-1")
		require.NoError(t, err)
		assert.Empty(t, res.BookValue)
	})
}

func TestAssetService_QRImage(t *testing.T) {
	ctx := context.Background()

	t.Run("presigns stored image", func(t *testing.T) {
		svc, mRepo, mStore, _ := newTestAssetService(t)

		mRepo.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1", QRImageKey: "qrcodes/qr.png"}, nil)
		mStore.On("PresignGet", ctx, "qrcodes/qr.png", 15*time.Minute).Return("https://example.com/qr.png", nil)

		url, err := svc.QRImage(ctx, "asset-1", 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/qr.png", url)
	})

	t.Run("missing image key", func(t *testing.T) {
		svc, mRepo, _, _ := newTestAssetService(t)

		mRepo.On("FindByID", ctx, "asset-1").Return(&model.Asset{ID: "asset-1"}, nil)

		url, err := svc.QRImage(ctx, "asset-1", time.Minute)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, url)
	})
}
