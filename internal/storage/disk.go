package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// diskStorage stores documents as plain files in a single directory.
type diskStorage struct {
	dir string
}

// NewDisk creates the upload directory (recursively) if missing and returns
// a Storage backed by it.
func NewDisk(dir string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &diskStorage{dir: dir}, nil
}

func (d *diskStorage) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid filename %q", name)
	}
	return filepath.Join(d.dir, name), nil
}

func (d *diskStorage) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	p, err := d.path(name)
	if err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(p)
		return fmt.Errorf("write %s: %w", name, err)
	}
	return f.Close()
}

func (d *diskStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	p, err := d.path(name)
	if err != nil {
		return nil, ErrNotFound
	}
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (d *diskStorage) Delete(ctx context.Context, name string) error {
	p, err := d.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
