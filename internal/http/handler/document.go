package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"assetz/internal/service"
)

// UploadAssetDocument attaches a file to an asset (multipart/form-data,
// field name: file; optional fields: document_type, title).
func UploadAssetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}
		docType := c.FormValue("document_type", "OTHER")
		title := c.FormValue("title", fh.Filename)

		doc, err := svc.Upload(c.UserContext(), actorFromCtx(c), metaFromCtx(c),
			c.Params("id"), docType, title, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ListAssetDocuments returns the documents attached to an asset.
func ListAssetDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := parsePage(c)
		if err != nil {
			return err
		}
		res, err := svc.ListByAsset(c.UserContext(), c.Params("id"), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetAssetDocument returns one document's metadata.
func GetAssetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Get(c.UserContext(), c.Params("docID"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DownloadAssetDocument returns a presigned URL for direct download.
func DownloadAssetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url, err := svc.DownloadURL(c.UserContext(), c.Params("docID"), 15*time.Minute)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// DeleteAssetDocument removes a document from storage and the database.
func DeleteAssetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), actorFromCtx(c), metaFromCtx(c), c.Params("docID")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
