package repository

import (
	"context"

	"cybercorner/internal/model"
)

// NewServiceRequest carries the caller-supplied fields of a service request.
// Status and CreatedAt are assigned by the store.
type NewServiceRequest struct {
	Name         string
	Phone        string
	ServiceType  string
	Message      *string
	DocumentFile *string
}

// ServiceRequestRepository is the data access surface for service requests.
type ServiceRequestRepository interface {
	// List returns all service requests, newest first (created_at DESC,
	// ties broken by id DESC).
	List(ctx context.Context) ([]model.ServiceRequest, error)

	// FindByID returns a single service request.
	FindByID(ctx context.Context, id int64) (*model.ServiceRequest, error)

	// Create inserts a new service request with status Pending.
	Create(ctx context.Context, in NewServiceRequest) (*model.ServiceRequest, error)

	// UpdateStatus sets the status of an existing request and returns the
	// updated row, or sql.ErrNoRows when the id is unknown.
	UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.ServiceRequest, error)

	// Delete removes a request by id. Missing ids are not an error.
	Delete(ctx context.Context, id int64) error
}
