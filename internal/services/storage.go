package services

import (
	"context"
	"io"
	"time"
)

// StorageService defines the interface for file storage operations. The
// pricing core never touches this; it serves the catalog-management upload
// endpoints only.
type StorageService interface {
	// Upload uploads a file to storage and returns the public URL
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) (string, error)

	// Delete removes a file from storage
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for a file
	GetURL(key string) string

	// Exists checks if a file exists in storage
	Exists(ctx context.Context, key string) (bool, error)
}

// ImageMetadata contains metadata about uploaded images
type ImageMetadata struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
