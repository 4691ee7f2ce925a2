package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mime/multipart"

	"cybercorner/internal/model"
	"cybercorner/internal/repository"
	"cybercorner/internal/upload"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidStatus = errors.New("Invalid status")
)

// CreateServiceRequestInput carries the parsed multipart form of a new
// service request. Document is nil when no file was attached.
type CreateServiceRequestInput struct {
	Name        string
	Phone       string
	ServiceType string
	Message     *string
	Document    *multipart.FileHeader
}

// ServiceRequestService implements the intake use cases.
type ServiceRequestService interface {
	// List returns all requests, newest first.
	List(ctx context.Context) ([]model.ServiceRequest, error)

	// Create runs the optional document through the upload pipeline and
	// inserts the request row. Upload policy violations pass through
	// unchanged (upload.ErrTooLarge, upload.ErrBadFileType).
	Create(ctx context.Context, in CreateServiceRequestInput) (*model.ServiceRequest, error)

	// UpdateStatus transitions a request between Pending and Completed.
	UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.ServiceRequest, error)

	// Delete removes a request. Idempotent.
	Delete(ctx context.Context, id int64) error
}

type serviceRequestService struct {
	repo     repository.ServiceRequestRepository
	pipeline *upload.Pipeline
}

func NewServiceRequestService(repo repository.ServiceRequestRepository, pipeline *upload.Pipeline) ServiceRequestService {
	return &serviceRequestService{repo: repo, pipeline: pipeline}
}

func (s *serviceRequestService) List(ctx context.Context) ([]model.ServiceRequest, error) {
	return s.repo.List(ctx)
}

func (s *serviceRequestService) Create(ctx context.Context, in CreateServiceRequestInput) (*model.ServiceRequest, error) {
	row := repository.NewServiceRequest{
		Name:        in.Name,
		Phone:       in.Phone,
		ServiceType: in.ServiceType,
		Message:     in.Message,
	}

	// The document is persisted before the row so the stored entity never
	// references a file that does not exist.
	if in.Document != nil {
		name, err := s.pipeline.Store(ctx, in.Document)
		if err != nil {
			return nil, err
		}
		row.DocumentFile = &name
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		if row.DocumentFile != nil {
			if delErr := s.pipeline.Discard(ctx, *row.DocumentFile); delErr != nil {
				return nil, fmt.Errorf("create request failed: %v; rollback of %s failed: %w", err, *row.DocumentFile, delErr)
			}
		}
		return nil, fmt.Errorf("create request: %w", err)
	}
	return created, nil
}

func (s *serviceRequestService) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.ServiceRequest, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the row only. An uploaded document, if any, deliberately
// stays in storage; see DESIGN.md on orphaned uploads.
func (s *serviceRequestService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
