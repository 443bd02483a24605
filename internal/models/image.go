package models

// ImageUpload describes a blob that was just stored: the public URL (or raw
// key when no public base URL is configured), the storage key, and the
// size/content type the client sent.
type ImageUpload struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}
