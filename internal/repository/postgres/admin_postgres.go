package postgres

import (
	"context"
	"database/sql"

	"cybercorner/internal/model"
	"cybercorner/internal/repository"
)

// AdminPostgres is the PostgreSQL implementation of repository.AdminRepository.
type AdminPostgres struct {
	db *sql.DB
}

func NewAdminPostgres(db *sql.DB) *AdminPostgres {
	return &AdminPostgres{db: db}
}

var _ repository.AdminRepository = (*AdminPostgres)(nil)

const adminColumns = "id, username, email, password_hash"

func (r *AdminPostgres) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	const q = `SELECT ` + adminColumns + ` FROM admins WHERE username = $1`
	return scanAdmin(r.db.QueryRowContext(ctx, q, username))
}

func (r *AdminPostgres) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	const q = `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`
	return scanAdmin(r.db.QueryRowContext(ctx, q, email))
}

func (r *AdminPostgres) FindByID(ctx context.Context, id int64) (*model.Admin, error) {
	const q = `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`
	return scanAdmin(r.db.QueryRowContext(ctx, q, id))
}

func (r *AdminPostgres) Create(ctx context.Context, username, email, passwordHash string) (*model.Admin, error) {
	const q = `
		INSERT INTO admins (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + adminColumns
	admin, err := scanAdmin(r.db.QueryRowContext(ctx, q, username, email, passwordHash))
	if err != nil {
		return nil, wrapUnique(err)
	}
	return admin, nil
}

func scanAdmin(row *sql.Row) (*model.Admin, error) {
	var a model.Admin
	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash); err != nil {
		return nil, err
	}
	return &a, nil
}
