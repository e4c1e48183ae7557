package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jdelaney/ratemyclass/internal/app/models/dto"
	"github.com/jdelaney/ratemyclass/internal/app/repositories"
	"github.com/jdelaney/ratemyclass/internal/pkg/apperrors"
	"github.com/jdelaney/ratemyclass/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	stores     Stores
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(stores Stores, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		stores:     stores,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues a bearer token carrying the
// username and role. An unknown username and a wrong password are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.stores.Users().GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user.Username, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        string(user.Role),
	}, nil
}
