package handlers

import (
	"bytes"
	"context"
	"io"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v3"

	"github.com/reconlens/reconlens-api/internal/models"
	"github.com/reconlens/reconlens-api/internal/services"
)

const (
	// PresignedURLExpiryMinutes is the expiry time for presigned URLs in minutes
	PresignedURLExpiryMinutes = 15
	// PresignedURLExpirySeconds is the expiry time for presigned URLs in seconds
	PresignedURLExpirySeconds = PresignedURLExpiryMinutes * 60
)

// AllowedContentTypes defines the content types that are allowed for upload
var AllowedContentTypes = map[string]bool{
	"text/csv":                 true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

// StorageService interface defines methods for S3 operations
type StorageService interface {
	GenerateUploadKey(dataType, filename string) (string, error)
	GeneratePresignedURL(key, contentType string, expiryMinutes int) (string, error)
	DownloadFile(key string) (io.ReadCloser, error)
}

// Parser interface defines methods for decoding spreadsheet files
type Parser interface {
	ParseFile(ctx context.Context, file io.Reader, filename string, onProgress services.ProgressFunc) ([]models.Row, error)
}

// FileValidator interface defines pre-parse upload validation
type FileValidator interface {
	ValidateFile(reader io.Reader, filename, contentType string) (*services.ValidationResult, error)
}

// DatasetStore interface defines the persistence operations the upload flow needs
type DatasetStore interface {
	Save(ctx context.Context, kind models.DataType, rows []models.Row) error
	ClearAll(ctx context.Context) error
}

// UploadHandler handles spreadsheet upload and ingestion requests
type UploadHandler struct {
	storage   StorageService
	parser    Parser
	validator FileValidator
	store     *services.DataStore
	db        DatasetStore
}

// NewUploadHandler creates a fully configured upload handler
func NewUploadHandler(storage StorageService, parser Parser, validator FileValidator, store *services.DataStore, db DatasetStore) *UploadHandler {
	return &UploadHandler{
		storage:   storage,
		parser:    parser,
		validator: validator,
		store:     store,
		db:        db,
	}
}

// GetPresignedURL generates a presigned URL for a spreadsheet upload
// Query params: filename (required), content_type (required), data_type (required)
// Returns: upload_url, file_key, expires_in
func (h *UploadHandler) GetPresignedURL(c fiber.Ctx) error {
	// 1. Get query parameters
	filename := c.Query("filename")
	contentType := c.Query("content_type")
	dataTypeParam := c.Query("data_type")

	// 2. Validate parameters
	if filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "filename is required",
		})
	}
	if contentType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "content_type is required",
		})
	}
	if !AllowedContentTypes[contentType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unsupported file type",
		})
	}
	dataType, err := models.ParseDataType(dataTypeParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// 3. Generate upload key scoped by dataset kind
	key, err := h.storage.GenerateUploadKey(string(dataType), filename)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to generate upload key",
			"details": err.Error(),
		})
	}

	// 4. Generate presigned URL
	url, err := h.storage.GeneratePresignedURL(key, contentType, PresignedURLExpiryMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "failed to generate presigned URL",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"upload_url": url,
		"file_key":   key,
		"expires_in": PresignedURLExpirySeconds,
	})
}

// ProcessUploadRequest represents the request body for ProcessUpload
type ProcessUploadRequest struct {
	FileKey  string `json:"file_key"`
	DataType string `json:"data_type"`
}

// ProcessUpload ingests an uploaded file: downloads it from S3, validates and
// parses it, persists the rows and replaces the in-memory collection wholesale.
// POST /v1/upload/process
// Body: {"file_key": "uploads/sales/...-sales.xlsx", "data_type": "Sales"}
func (h *UploadHandler) ProcessUpload(c fiber.Ctx) error {
	// 1. Parse request body
	var req ProcessUploadRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.FileKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file_key is required",
		})
	}
	dataType, err := models.ParseDataType(req.DataType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// 2. Download file from S3
	reader, err := h.storage.DownloadFile(req.FileKey)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "file not found in storage",
		})
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	// 3. Validate before parsing
	filename := filepath.Base(req.FileKey)
	if h.validator != nil {
		result, err := h.validator.ValidateFile(bytes.NewReader(content), filename, string(c.Request().Header.ContentType()))
		if err == nil && !result.Valid {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "file failed validation",
				"details": result.Errors,
			})
		}
	}

	// 4. Parse into rows, logging the staged progress signal
	rows, err := h.parser.ParseFile(c.Context(), bytes.NewReader(content), filename, func(percent int) {
		log.Printf("parsing %s (%s): %d%%", filename, dataType, percent)
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "failed to parse file",
			"details": err.Error(),
		})
	}

	// 5. Persist, then replace the in-memory collection
	if h.db != nil {
		if err := h.db.Save(c.Context(), dataType, rows); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "failed to persist rows",
				"details": err.Error(),
			})
		}
	}
	h.store.Replace(dataType, rows)

	return c.JSON(fiber.Map{
		"file_key":  req.FileKey,
		"data_type": string(dataType),
		"row_count": len(rows),
		"status":    "success",
	})
}
