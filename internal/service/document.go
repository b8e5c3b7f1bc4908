package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"assetz/internal/model"
	"assetz/internal/repository"
	"assetz/internal/storage"
)

// DocumentListResult is the service-level DTO for paginated asset documents.
type DocumentListResult struct {
	Items []model.AssetDocument `json:"data"`
	Total int                   `json:"total"`
}

// DocumentService handles files attached to assets.
type DocumentService interface {
	// Upload uploads the content to object storage, saves metadata to DB, and
	// rolls back storage if DB save fails. originalFilename is used only to
	// extract the extension; the stored key is UUID + original extension.
	Upload(ctx context.Context, actor Actor, meta RequestMeta, assetID, documentType, title string, r io.Reader, originalFilename, contentType string, size int64) (*model.AssetDocument, error)

	Get(ctx context.Context, id string) (*model.AssetDocument, error)
	ListByAsset(ctx context.Context, assetID string, limit, offset int) (*DocumentListResult, error)

	// DownloadURL returns a presigned URL for direct download from storage.
	DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error)

	// Delete removes a document from both storage and the database.
	Delete(ctx context.Context, actor Actor, meta RequestMeta, id string) error
}

type documentService struct {
	assets repository.AssetRepository
	repo   repository.DocumentRepository
	store  storage.Storage
	audit  AuditService
}

func NewDocumentService(assets repository.AssetRepository, repo repository.DocumentRepository, store storage.Storage, audit AuditService) DocumentService {
	return &documentService{assets: assets, repo: repo, store: store, audit: audit}
}

func (s *documentService) Upload(ctx context.Context, actor Actor, meta RequestMeta, assetID, documentType, title string, r io.Reader, originalFilename, contentType string, size int64) (*model.AssetDocument, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if assetID == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.assets.FindByID(ctx, assetID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("documents", assetID, uuid.New().String()+ext))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.AssetDocument{
		ID:           uuid.New().String(),
		AssetID:      assetID,
		DocumentType: documentType,
		Title:        title,
		StoragePath:  objInfo.Key,
		Size:         objInfo.Size,
		ContentType:  objInfo.ContentType,
		UploadedBy:   actorID(actor),
		CreatedAt:    time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditCreate, "asset_document", stored.ID, stored.Title, "document uploaded", nil, stored)
	return stored, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*model.AssetDocument, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) ListByAsset(ctx context.Context, assetID string, limit, offset int) (*DocumentListResult, error) {
	if assetID == "" {
		return nil, ErrIDRequired
	}
	res, err := s.repo.ListByAsset(ctx, assetID, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, doc.StoragePath, expiry)
}

// Delete removes the file from storage first; if that fails the DB row is
// kept so the storage reference is not lost.
func (s *documentService) Delete(ctx context.Context, actor Actor, meta RequestMeta, id string) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditDelete, "asset_document", doc.ID, doc.Title, "document deleted", doc, nil)
	return nil
}
