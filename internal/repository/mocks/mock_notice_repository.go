package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cybercorner/internal/model"
)

type MockNoticeRepository struct {
	mock.Mock
}

func (m *MockNoticeRepository) List(ctx context.Context) ([]model.Notice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notice), args.Error(1)
}

func (m *MockNoticeRepository) Create(ctx context.Context, title, message string) (*model.Notice, error) {
	args := m.Called(ctx, title, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notice), args.Error(1)
}

func (m *MockNoticeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
