package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/edupanel/center-service/internal/auth"
	"github.com/edupanel/center-service/internal/config"
	"github.com/edupanel/center-service/internal/domain"
	"github.com/edupanel/center-service/internal/repository"
	apperrors "github.com/edupanel/center-service/pkg/util"
)

// TokenPair bundles the access and refresh tokens returned at login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// AuthService coordinates login, token refresh and password changes.
type AuthService struct {
	employees  repository.EmployeeRepository
	refreshers repository.RefreshTokenRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	refreshTTL time.Duration
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	EmployeeRepo     repository.EmployeeRepository
	RefreshTokenRepo repository.RefreshTokenRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		employees:  deps.EmployeeRepo,
		refreshers: deps.RefreshTokenRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
		refreshTTL: cfg.Auth.RefreshTokenTTL(),
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login authenticates an employee by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Employee, *TokenPair, error) {
	employee, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, nil, apperrors.MapError(err)
	}
	if !employee.Active {
		return nil, nil, apperrors.NewUnauthorized("employee deactivated")
	}
	if err := auth.ComparePassword(employee.PasswordHash, password); err != nil {
		return nil, nil, apperrors.NewUnauthorized("invalid credentials")
	}

	pair, err := s.issueTokens(ctx, employee)
	if err != nil {
		return nil, nil, err
	}
	return employee, pair, nil
}

// Refresh rotates a refresh token and issues a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.Employee, *TokenPair, error) {
	employeeID, err := s.refreshers.Lookup(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, nil, apperrors.NewUnauthorized("invalid refresh token")
		}
		return nil, nil, apperrors.MapError(err)
	}

	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, nil, apperrors.NewUnauthorized("employee not found")
	}
	if !employee.Active {
		return nil, nil, apperrors.NewUnauthorized("employee deactivated")
	}

	// One-time use: the old token is revoked before the new one is issued.
	if err := s.refreshers.Revoke(ctx, refreshToken); err != nil {
		return nil, nil, apperrors.MapError(err)
	}

	pair, err := s.issueTokens(ctx, employee)
	if err != nil {
		return nil, nil, err
	}
	return employee, pair, nil
}

// Logout revokes the presented refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.refreshers.Revoke(ctx, refreshToken)
}

// ChangePassword verifies the current password and stores a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, actor *domain.Employee, currentPassword, newPassword string) error {
	if actor == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := auth.ComparePassword(actor.PasswordHash, currentPassword); err != nil {
		return apperrors.NewValidationError("current password incorrect", nil)
	}
	if err := auth.ValidateNewPassword(newPassword); err != nil {
		return err
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	actor.PasswordHash = hash
	if err := s.employees.Update(ctx, actor); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, employee *domain.Employee) (*TokenPair, error) {
	access, exp, err := s.tokenMgr.GenerateToken(employee.ID, employee.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	refresh := uuid.NewString()
	if err := s.refreshers.Store(ctx, refresh, employee.ID, s.refreshTTL); err != nil {
		return nil, apperrors.MapError(err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: exp}, nil
}
