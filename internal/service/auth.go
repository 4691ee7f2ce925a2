package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"cybercorner/internal/model"
	"cybercorner/internal/repository"
)

// TokenTTL is the lifetime of a session token and its cookie.
const TokenTTL = 24 * time.Hour

var (
	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// callers cannot distinguish the two (account-enumeration resistance).
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken covers missing, malformed, expired, and wrongly signed
	// tokens, as well as tokens whose admin no longer exists.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthService implements the administrator session lifecycle: password
// verification, token issuance, and token verification.
type AuthService interface {
	// Login verifies the credentials and, on success, returns the admin and
	// a signed session token. Failures are uniformly ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*model.Admin, string, error)

	// VerifyToken checks signature and expiry, then resolves the admin the
	// token was issued for.
	VerifyToken(ctx context.Context, token string) (*model.Admin, error)
}

// HashPassword derives a bcrypt hash at the default cost (10).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

type authService struct {
	admins repository.AdminRepository
	secret []byte
}

func NewAuthService(admins repository.AdminRepository, secret string) AuthService {
	return &authService{admins: admins, secret: []byte(secret)}
}

// tokenClaims is the token payload: just the admin id plus standard expiry.
type tokenClaims struct {
	ID int64 `json:"id"`
	jwt.RegisteredClaims
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.Admin, string, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	// bcrypt.CompareHashAndPassword is constant-time.
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := tokenClaims{
		ID: admin.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	return admin, token, nil
}

func (s *authService) VerifyToken(ctx context.Context, tokenStr string) (*model.Admin, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	admin, err := s.admins.FindByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return admin, nil
}
