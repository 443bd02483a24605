package blobstore

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// BuildKey assembles the composite storage key for an image.
func BuildKey(userID, imageID string) string {
	return userID + "/" + imageID
}

// NewImageID generates a unique image id, preserving the original file
// extension so downstream consumers can infer the content type.
func NewImageID(filename string) string {
	id := uuid.New().String()
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		return id
	}
	return id + "." + ext
}
