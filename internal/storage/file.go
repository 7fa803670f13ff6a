package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// fileStorage keeps objects as plain files below a root directory.
// Writes go to a temporary file that is renamed over the target, so readers never observe a partial object.
type fileStorage struct {
	root string
}

// NewFile returns a Storage rooted at dir, creating the directory if needed.
func NewFile(dir string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &fileStorage{root: dir}, nil
}

func (f *fileStorage) path(key string) (string, error) {
	p := filepath.FromSlash(key)
	if !filepath.IsLocal(p) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(f.root, p), nil
}

// Put writes the object atomically.
func (f *fileStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}
	target, err := f.path(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ObjectInfo{}, fmt.Errorf("create parent directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	n, err := io.Copy(tmp, r)
	if err != nil {
		cleanup()
		return ObjectInfo{}, fmt.Errorf("write object: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return ObjectInfo{}, fmt.Errorf("sync object: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return ObjectInfo{}, fmt.Errorf("close object: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return ObjectInfo{}, fmt.Errorf("chmod object: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return ObjectInfo{}, fmt.Errorf("rename object: %w", err)
	}

	info := ObjectInfo{Key: key, Size: n, ContentType: opt.ContentType}
	if st, err := os.Stat(target); err == nil {
		info.LastModified = st.ModTime()
	}
	return info, nil
}

// Get opens the object for reading. The caller must close the returned reader.
func (f *fileStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}
	p, err := f.path(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	fh, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ObjectInfo{}, fmt.Errorf("%w: %s", ErrNotExist, key)
		}
		return nil, ObjectInfo{}, err
	}
	st, err := fh.Stat()
	if err != nil {
		fh.Close()
		return nil, ObjectInfo{}, err
	}
	if st.IsDir() {
		fh.Close()
		return nil, ObjectInfo{}, fmt.Errorf("%w: %s is a directory", ErrInvalidKey, key)
	}
	return fh, ObjectInfo{Key: key, Size: st.Size(), LastModified: st.ModTime()}, nil
}

// Ping verifies the root directory is still present.
func (f *fileStorage) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	st, err := os.Stat(f.root)
	if err != nil {
		return err
	}
	if !st.IsDir() {
		return fmt.Errorf("storage root %s is not a directory", f.root)
	}
	return nil
}
