package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cybercorner/internal/model"
	repoMocks "cybercorner/internal/repository/mocks"
)

const testSecret = "test-secret"

func seededAdmin(t *testing.T) *model.Admin {
	t.Helper()
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	return &model.Admin{
		ID:           1,
		Username:     "admin",
		Email:        "admin@cybercorner.com",
		PasswordHash: hash,
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	admin := seededAdmin(t)

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(repoMocks.MockAdminRepository)
		repo.On("FindByEmail", mock.Anything, admin.Email).Return(admin, nil).Once()
		svc := NewAuthService(repo, testSecret)

		got, token, err := svc.Login(ctx, admin.Email, "admin123")

		require.NoError(t, err)
		assert.Equal(t, admin.ID, got.ID)
		assert.NotEmpty(t, token)
		repo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(repoMocks.MockAdminRepository)
		repo.On("FindByEmail", mock.Anything, admin.Email).Return(admin, nil).Once()
		svc := NewAuthService(repo, testSecret)

		_, _, err := svc.Login(ctx, admin.Email, "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email maps to the same error", func(t *testing.T) {
		repo := new(repoMocks.MockAdminRepository)
		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, sql.ErrNoRows).Once()
		svc := NewAuthService(repo, testSecret)

		_, _, err := svc.Login(ctx, "nobody@example.com", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()
	admin := seededAdmin(t)

	issue := func(t *testing.T) string {
		repo := new(repoMocks.MockAdminRepository)
		repo.On("FindByEmail", mock.Anything, admin.Email).Return(admin, nil).Once()
		svc := NewAuthService(repo, testSecret)
		_, token, err := svc.Login(ctx, admin.Email, "admin123")
		require.NoError(t, err)
		return token
	}

	t.Run("round trip", func(t *testing.T) {
		token := issue(t)

		repo := new(repoMocks.MockAdminRepository)
		repo.On("FindByID", mock.Anything, admin.ID).Return(admin, nil).Once()
		svc := NewAuthService(repo, testSecret)

		got, err := svc.VerifyToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, admin.Email, got.Email)
		repo.AssertExpectations(t)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := issue(t)

		svc := NewAuthService(new(repoMocks.MockAdminRepository), "a-different-secret")
		_, err := svc.VerifyToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := tokenClaims{
			ID: admin.ID,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		svc := NewAuthService(new(repoMocks.MockAdminRepository), testSecret)
		_, err = svc.VerifyToken(ctx, expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("admin deleted since issuance", func(t *testing.T) {
		token := issue(t)

		repo := new(repoMocks.MockAdminRepository)
		repo.On("FindByID", mock.Anything, admin.ID).Return(nil, sql.ErrNoRows).Once()
		svc := NewAuthService(repo, testSecret)

		_, err := svc.VerifyToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := NewAuthService(new(repoMocks.MockAdminRepository), testSecret)
		_, err := svc.VerifyToken(ctx, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	// bcrypt hashes self-describe their cost; default cost is 10.
	assert.Contains(t, hash, "$10$")
}
