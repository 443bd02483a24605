package services

import (
	"context"
	"fmt"
	"io"

	"github.com/dobleb/todo-backend/internal/blobstore"
	"github.com/dobleb/todo-backend/internal/common"
	"github.com/dobleb/todo-backend/internal/models"
)

// ImageService implements the image lifecycle over the blob store.
// Size and content-type validation happens at the HTTP boundary; this
// service only builds keys and drives the adapter.
type ImageService struct {
	store blobstore.Store
}

func NewImageService(store blobstore.Store) *ImageService {
	return &ImageService{store: store}
}

// Upload stores the image under a freshly generated {userId}/{imageId} key.
func (s *ImageService) Upload(ctx context.Context, userID, filename, contentType string, size int64, body io.Reader) (*models.ImageUpload, error) {
	key := blobstore.BuildKey(userID, blobstore.NewImageID(filename))

	url, err := s.store.Upload(ctx, key, body, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("uploading image: %w", err)
	}

	return &models.ImageUpload{
		URL:         url,
		Key:         key,
		Size:        size,
		ContentType: contentType,
	}, nil
}

// Fetch streams an image by its key parts. Missing keys come back as
// common.ErrNotFound.
func (s *ImageService) Fetch(ctx context.Context, userID, imageID string) (*blobstore.Object, error) {
	return s.store.Fetch(ctx, blobstore.BuildKey(userID, imageID))
}

// Delete removes an image, checking existence first so a missing key
// reports common.ErrNotFound rather than silently succeeding.
func (s *ImageService) Delete(ctx context.Context, userID, imageID string) error {
	key := blobstore.BuildKey(userID, imageID)

	exists, err := s.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("checking image: %w", err)
	}
	if !exists {
		return common.ErrNotFound
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("deleting image: %w", err)
	}
	return nil
}
