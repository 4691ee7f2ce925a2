package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cybercorner/internal/model"
	"cybercorner/internal/repository"
)

type MockServiceRequestRepository struct {
	mock.Mock
}

func (m *MockServiceRequestRepository) List(ctx context.Context) ([]model.ServiceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) FindByID(ctx context.Context, id int64) (*model.ServiceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) Create(ctx context.Context, in repository.NewServiceRequest) (*model.ServiceRequest, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.ServiceRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
