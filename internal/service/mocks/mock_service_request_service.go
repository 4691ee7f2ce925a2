package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cybercorner/internal/model"
	"cybercorner/internal/service"
)

type MockServiceRequestService struct {
	mock.Mock
}

func (m *MockServiceRequestService) List(ctx context.Context) ([]model.ServiceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestService) Create(ctx context.Context, in service.CreateServiceRequestInput) (*model.ServiceRequest, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestService) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.ServiceRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
