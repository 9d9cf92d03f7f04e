package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/models"
	"github.com/sagarsahu/creative-vault/backend/internal/storage"
)

// UploadHandler handles manuscript and image uploads
type UploadHandler struct {
	uploader storage.Uploader
	logger   *zap.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploader storage.Uploader, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{uploader: uploader, logger: logger}
}

// RegisterUploadRoutes registers the authenticated upload route
func (h *UploadHandler) RegisterUploadRoutes(g *echo.Group) {
	g.POST("/uploads", h.Upload)
}

// Upload stores the multipart "file" field and returns its public URL
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return models.NewValidationError("missing file field")
	}

	result, err := h.uploader.Upload(c.Request().Context(), fileHeader)
	if err != nil {
		switch err {
		case storage.ErrFileTooLarge, storage.ErrInvalidExtension:
			return models.NewValidationError(err.Error())
		}
		h.logger.Error("upload failed", zap.String("file", fileHeader.Filename), zap.Error(err))
		return models.NewStorageError("upload failed", err)
	}

	return c.JSON(http.StatusCreated, result)
}
