package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/platform/storage"
)

// imageStore handles the blob side of entity images. Keys follow the
// layout <prefix>/<entity id>/<random key>; the random key is recorded
// on the entity and an empty recorded key means "no image".
type imageStore struct {
	blobs  storage.Storage
	bucket string
	prefix string
}

func (s imageStore) blobKey(id uint, key string) string {
	return fmt.Sprintf("%s/%d/%s", s.prefix, id, key)
}

func (s imageStore) put(ctx context.Context, id uint, key string, data []byte) error {
	if err := s.blobs.Put(ctx, data, s.blobKey(id, key), s.bucket); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrImageUpload, err)
	}
	return nil
}

func (s imageStore) get(ctx context.Context, id uint, key string) ([]byte, error) {
	data, err := s.blobs.Get(ctx, s.blobKey(id, key), s.bucket)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s imageStore) remove(ctx context.Context, id uint, key string) error {
	return s.blobs.Delete(ctx, s.blobKey(id, key), s.bucket)
}
