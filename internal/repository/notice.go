package repository

import (
	"context"

	"cybercorner/internal/model"
)

// NoticeRepository is the data access surface for public notices.
type NoticeRepository interface {
	// List returns all notices, newest first.
	List(ctx context.Context) ([]model.Notice, error)

	// Create inserts a new notice.
	Create(ctx context.Context, title, message string) (*model.Notice, error)

	// Delete removes a notice by id. Missing ids are not an error.
	Delete(ctx context.Context, id int64) error
}
