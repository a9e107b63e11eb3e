package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/unifiedacademics/uap-backend/internal/app/models"
	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/app/repositories"
	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
	"github.com/unifiedacademics/uap-backend/internal/pkg/auth"
	"github.com/unifiedacademics/uap-backend/internal/pkg/email"
)

// AuthService handles login, logout and the password reset flow for the
// single privileged admin role.
type AuthService struct {
	employeeRepo repositories.IEmployeeRepository
	sessions     *auth.SessionService
	notifier     email.Notifier
	baseURL      string
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	employeeRepo repositories.IEmployeeRepository,
	sessions *auth.SessionService,
	notifier email.Notifier,
	baseURL string,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		sessions:     sessions,
		notifier:     notifier,
		baseURL:      baseURL,
		logger:       logger,
	}
}

// Login verifies role, identifier, email and password together and issues a
// signed session token on success. Every failure collapses to the same
// invalid-credentials error so callers cannot distinguish which part failed.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.Employee, string, error) {
	if req.Role != auth.RoleHSD {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	employee, err := s.employeeRepo.GetActiveByEmployeeIDAndEmail(ctx, req.EmployeeID, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login lookup failed: %w", err)
	}

	if !auth.CheckPassword(employee.Password, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.NewSession(employee.EmployeeID, employee.Name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session: %w", err)
	}

	s.logger.Info().Str("employeeId", employee.EmployeeID).Msg("Admin logged in")
	return employee, token, nil
}

// ForgotPassword sends a reset link when the identifier and email match an
// active account. Lookups that match nothing are logged and reported as
// success so the endpoint does not leak which accounts exist.
func (s *AuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	if req.Role != "" && req.Role != auth.RoleHSD {
		return nil
	}

	employee, err := s.employeeRepo.GetActiveByEmployeeIDAndEmail(ctx, req.EmployeeID, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			s.logger.Info().Str("employeeId", req.EmployeeID).Msg("Password reset requested for unknown account")
			return nil
		}
		return fmt.Errorf("password reset lookup failed: %w", err)
	}

	token, err := s.sessions.NewResetToken(employee.ID)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)
	s.notifier.Notify(email.ResetPasswordMessage(employee.Email, employee.Name, resetURL))
	s.logger.Info().Str("employeeId", employee.EmployeeID).Msg("Password reset email enqueued")
	return nil
}

// ResetPassword validates the emailed token and the new password, then
// replaces the stored hash.
func (s *AuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	if len(req.Password) < 8 {
		return apperrors.ErrPasswordTooShort
	}
	if req.Password != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	claims, err := s.sessions.ValidateResetToken(req.Token)
	if err != nil {
		return apperrors.ErrInvalidResetToken
	}

	employee, err := s.employeeRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return fmt.Errorf("reset lookup failed: %w", err)
	}
	if !employee.IsActive {
		return apperrors.ErrInvalidResetToken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.employeeRepo.UpdatePassword(ctx, employee.EmployeeID, hash); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}

	s.logger.Info().Str("employeeId", employee.EmployeeID).Msg("Password reset completed")
	return nil
}

// ValidateSession checks a session cookie value and returns its claims.
func (s *AuthService) ValidateSession(token string) (*auth.SessionClaims, error) {
	claims, err := s.sessions.ValidateSession(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrSessionInvalid
	}
	if claims.Role != auth.RoleHSD {
		return nil, apperrors.ErrPermissionDenied
	}
	return claims, nil
}

// SessionTTLSeconds exposes the cookie max-age for the login handler.
func (s *AuthService) SessionTTLSeconds() int {
	return int(s.sessions.SessionTTL().Seconds())
}
