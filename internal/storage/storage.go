// Package storage abstracts where uploaded documents live. The default
// backend is a local directory served under /uploads/; an S3-compatible
// backend (MinIO) can be selected with STORAGE_DRIVER=minio so several
// instances can share one document store.
package storage

import (
	"context"
	"io"
	"io/fs"
)

// ErrNotFound is returned by Open for unknown filenames. It aliases
// fs.ErrNotExist so errors.Is works uniformly across backends.
var ErrNotFound = fs.ErrNotExist

// Storage persists and serves uploaded documents by generated filename.
// Filenames never contain path separators; implementations must reject any
// name that would escape the store.
type Storage interface {
	// Put persists the content under name. size is the exact byte count.
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error

	// Open returns the content for a previously stored name, or ErrNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete removes a stored file. Used only to roll back an upload whose
	// database row failed to insert; missing names are not an error.
	Delete(ctx context.Context, name string) error
}
