package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"cybercorner/internal/model"
	"cybercorner/internal/repository"
)

// ServiceRequestPostgres is the PostgreSQL implementation of
// repository.ServiceRequestRepository.
type ServiceRequestPostgres struct {
	db *sql.DB
}

func NewServiceRequestPostgres(db *sql.DB) *ServiceRequestPostgres {
	return &ServiceRequestPostgres{db: db}
}

var _ repository.ServiceRequestRepository = (*ServiceRequestPostgres)(nil)

const serviceRequestColumns = "id, name, phone, service_type, message, document_file, status, created_at"

func (r *ServiceRequestPostgres) List(ctx context.Context) ([]model.ServiceRequest, error) {
	const q = `
		SELECT ` + serviceRequestColumns + `
		FROM service_requests
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ServiceRequest, 0)
	for rows.Next() {
		sr, err := scanServiceRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *sr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ServiceRequestPostgres) FindByID(ctx context.Context, id int64) (*model.ServiceRequest, error) {
	const q = `SELECT ` + serviceRequestColumns + ` FROM service_requests WHERE id = $1`
	return scanServiceRequest(r.db.QueryRowContext(ctx, q, id))
}

func (r *ServiceRequestPostgres) Create(ctx context.Context, in repository.NewServiceRequest) (*model.ServiceRequest, error) {
	const q = `
		INSERT INTO service_requests (name, phone, service_type, message, document_file)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + serviceRequestColumns
	return scanServiceRequest(r.db.QueryRowContext(ctx, q,
		in.Name,
		in.Phone,
		in.ServiceType,
		in.Message,
		in.DocumentFile,
	))
}

// UpdateStatus double-checks the enum before touching the store; the CHECK
// constraint would reject it anyway, but with a driver error instead of a
// clean one.
func (r *ServiceRequestPostgres) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.ServiceRequest, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	const q = `
		UPDATE service_requests
		SET status = $2
		WHERE id = $1
		RETURNING ` + serviceRequestColumns
	return scanServiceRequest(r.db.QueryRowContext(ctx, q, id, string(status)))
}

func (r *ServiceRequestPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM service_requests WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanServiceRequest(row rowScanner) (*model.ServiceRequest, error) {
	var sr model.ServiceRequest
	if err := row.Scan(
		&sr.ID,
		&sr.Name,
		&sr.Phone,
		&sr.ServiceType,
		&sr.Message,
		&sr.DocumentFile,
		&sr.Status,
		&sr.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &sr, nil
}
