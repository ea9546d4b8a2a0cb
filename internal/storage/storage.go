// Package storage holds the photo storage backends. A deployment either
// uploads photos to DigitalOcean Spaces (S3-compatible) and keeps an
// external URL, or keeps the bytes inline on the profile row.
package storage

import (
	"context"
	"fmt"
)

// PhotoStore persists an uploaded photo and answers with the reference the
// profile row should carry.
type PhotoStore interface {
	// Save stores the photo bytes under the given object key.
	Save(ctx context.Context, key string, data []byte, contentType string) (PhotoRef, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // spaces, db
	Region    string // Spaces region
	Bucket    string // Spaces bucket name
	AccessKey string
	SecretKey string
}

// NewPhotoStore creates a store based on configuration.
func NewPhotoStore(cfg Config) (PhotoStore, error) {
	switch cfg.Type {
	case "spaces":
		return NewSpacesStore(cfg)
	case "db":
		return NewDBStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
