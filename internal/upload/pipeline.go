// Package upload implements the validated document upload pipeline: size and
// type policy, deterministic filename assignment, and handoff to the storage
// backend.
package upload

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"cybercorner/internal/storage"
)

// FieldName is the multipart form field carrying the document.
const FieldName = "documentFile"

// MaxFileSize is the per-file upload cap.
const MaxFileSize = 5 << 20 // 5 MiB

// Policy violations; handlers surface these verbatim as 400 bodies.
var (
	ErrTooLarge    = errors.New("File exceeds the 5 MB size limit")
	ErrBadFileType = errors.New("Only PDF, JPG, and PNG files are allowed")
)

// Both the extension and the client-reported content type must be in the
// allowed set; either check alone is trivially spoofable.
var (
	allowedExts = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".pdf":  true,
	}
	allowedContentTypes = map[string]bool{
		"image/jpeg":      true,
		"image/jpg":       true,
		"image/png":       true,
		"application/pdf": true,
	}
)

// Pipeline validates and persists multipart document uploads.
type Pipeline struct {
	store storage.Storage
}

func NewPipeline(store storage.Storage) *Pipeline {
	return &Pipeline{store: store}
}

// Store validates the upload policy and, if it passes, persists the file
// under a generated name, which it returns. The file hits storage before any
// database row references it.
func (p *Pipeline) Store(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxFileSize {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return "", ErrBadFileType
	}
	contentType := fh.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		return "", ErrBadFileType
	}

	name := Filename(ext)

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer f.Close()

	if err := p.store.Put(ctx, name, f, fh.Size, contentType); err != nil {
		return "", fmt.Errorf("persist %s: %w", name, err)
	}
	return name, nil
}

// Discard removes a stored file again. Used when the database insert that
// should have referenced it failed.
func (p *Pipeline) Discard(ctx context.Context, name string) error {
	return p.store.Delete(ctx, name)
}

// Filename generates a stored filename of the form
// documentFile-<ms since epoch>-<random, up to 9 digits><ext>. Collisions
// within one millisecond need matching random suffixes too, which is treated
// as impossible.
func Filename(ext string) string {
	return fmt.Sprintf("%s-%d-%d%s", FieldName, time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
}
