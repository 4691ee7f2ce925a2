package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cybercorner/internal/model"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.Admin, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.Admin), args.String(1), args.Error(2)
}

func (m *MockAuthService) VerifyToken(ctx context.Context, token string) (*model.Admin, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}
