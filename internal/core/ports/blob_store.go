package ports

import (
	"context"
	"io"
)

// BlobStore defines the object-storage contract for binary content such as
// profile images. Keys are opaque to the domain; the store decides where
// and how objects live.
type BlobStore interface {
	// Upload stores the object under key and returns its public URL.
	// An existing object under the same key is overwritten.
	Upload(ctx context.Context, key string, data io.Reader, size int64, contentType string) (string, error)

	// Remove deletes the object stored under key. Removing a missing
	// object is not an error.
	Remove(ctx context.Context, key string) error
}
