// Package storage provides blob storage for entity images. Keys are
// opaque slash-separated paths generated by the services; a bucket is a
// top-level namespace.
package storage

import "context"

// Storage abstracts the blob store behind put/get/delete primitives.
type Storage interface {
	// Put writes the blob under the given key, overwriting any previous
	// content.
	Put(ctx context.Context, data []byte, key, bucket string) error

	// Get reads the blob stored under the key. A missing key yields an
	// error satisfying errors.Is(err, fs.ErrNotExist).
	Get(ctx context.Context, key, bucket string) ([]byte, error)

	// Delete removes the blob. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key, bucket string) error
}
