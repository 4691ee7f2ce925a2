package repository

import (
	"context"

	"cybercorner/internal/model"
)

// AdminRepository is the data access surface for administrator accounts.
// Admins are never deleted through the API.
type AdminRepository interface {
	// FindByUsername returns the admin with the given username.
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)

	// FindByEmail returns the admin with the given email.
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)

	// FindByID returns the admin with the given id.
	FindByID(ctx context.Context, id int64) (*model.Admin, error)

	// Create inserts a new admin. Returns ErrUniqueViolation when the
	// username or email is already taken.
	Create(ctx context.Context, username, email, passwordHash string) (*model.Admin, error)
}
