package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Disk stores blobs on the local filesystem under root/bucket/key.
type Disk struct {
	root string
}

var _ Storage = (*Disk)(nil)

// NewDisk creates a disk-backed store rooted at the given directory.
func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &Disk{root: root}, nil
}

// Put writes the blob, creating intermediate directories for keys with
// path segments.
func (d *Disk) Put(_ context.Context, data []byte, key, bucket string) error {
	path, err := d.path(key, bucket)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create blob directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	return nil
}

// Get reads the blob stored under the key.
func (d *Disk) Get(_ context.Context, key, bucket string) ([]byte, error) {
	path, err := d.path(key, bucket)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Delete removes the blob if present.
func (d *Disk) Delete(_ context.Context, key, bucket string) error {
	path, err := d.path(key, bucket)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

// path resolves a key to an on-disk location, refusing keys that would
// escape the bucket.
func (d *Disk) path(key, bucket string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(d.root, bucket, clean), nil
}
