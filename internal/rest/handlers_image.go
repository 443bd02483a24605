package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dobleb/todo-backend/internal/blobstore"
	"github.com/dobleb/todo-backend/internal/common"
	"github.com/dobleb/todo-backend/internal/models"
	"github.com/labstack/echo/v4"
)

// maxImageSize is the upload limit, enforced before any store call.
const maxImageSize = 5 * 1024 * 1024

// ImageService is the slice of the image lifecycle the handlers need.
type ImageService interface {
	Upload(ctx context.Context, userID, filename, contentType string, size int64, body io.Reader) (*models.ImageUpload, error)
	Fetch(ctx context.Context, userID, imageID string) (*blobstore.Object, error)
	Delete(ctx context.Context, userID, imageID string) error
}

func (s *Server) handleUploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return respondError(c, http.StatusBadRequest, "An image file is required")
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return respondError(c, http.StatusBadRequest, "File must be an image")
	}
	if fileHeader.Size > maxImageSize {
		return respondError(c, http.StatusBadRequest, "Image must not exceed 5MB")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return s.internalError(c, err, "Failed to upload image")
	}
	defer src.Close()

	upload, err := s.images.Upload(c.Request().Context(), currentUserID(c),
		fileHeader.Filename, contentType, fileHeader.Size, src)
	if err != nil {
		return s.internalError(c, err, "Failed to upload image")
	}

	return respondData(c, http.StatusCreated, upload)
}

// handleGetImage is public: image URLs are shared with clients that carry
// no token.
func (s *Server) handleGetImage(c echo.Context) error {
	obj, err := s.images.Fetch(c.Request().Context(), c.Param("userId"), c.Param("imageId"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "Image not found")
		}
		return s.internalError(c, err, "Failed to fetch image")
	}
	defer obj.Body.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=31536000")
	return c.Stream(http.StatusOK, contentType, obj.Body)
}

func (s *Server) handleDeleteImage(c echo.Context) error {
	// Images carry the owner in the path, so a mismatch is visible and
	// reported as forbidden, unlike todos where a scoped query hides it.
	if c.Param("userId") != currentUserID(c) {
		return respondError(c, http.StatusForbidden, "You do not own this image")
	}

	err := s.images.Delete(c.Request().Context(), c.Param("userId"), c.Param("imageId"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "Image not found")
		}
		return s.internalError(c, err, "Failed to delete image")
	}

	return respondData(c, http.StatusOK, map[string]string{
		"message": "Image deleted successfully",
	})
}
