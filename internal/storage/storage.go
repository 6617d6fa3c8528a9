// Package storage abstracts the object store that hosts uploaded images.
package storage

import (
	"context"
	"io"
)

// Uploader stores binary objects and hands back public URLs.
type Uploader interface {
	Upload(ctx context.Context, objectKey, contentType string, r io.Reader, size int64) (string, error)
	Remove(ctx context.Context, objectKey string) error
}
