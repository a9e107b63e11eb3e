package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrWrongPurpose = errors.New("token issued for a different purpose")
)

// RoleHSD is the single privileged role the admin surface recognizes.
const RoleHSD = "hsd"

// SessionCookieName is the cookie the browser session rides in.
const SessionCookieName = "uap_session"

// Token purposes
const (
	purposeSession       = "session"
	purposePasswordReset = "password_reset"
)

// SessionConfig defines signing settings for session and reset tokens
type SessionConfig struct {
	Secret        string
	SessionTTL    time.Duration
	ResetTokenTTL time.Duration
	Issuer        string
}

// SessionService signs and validates the cookie-backed session tokens and the
// emailed password reset tokens.
type SessionService struct {
	config SessionConfig
}

// NewSessionService creates a new session service
func NewSessionService(config SessionConfig) *SessionService {
	return &SessionService{config: config}
}

// SessionClaims defines session token content
type SessionClaims struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Purpose    string `json:"purpose"`
	jwt.RegisteredClaims
}

// ResetClaims defines password reset token content
type ResetClaims struct {
	UserID  int64  `json:"userId"`
	Role    string `json:"role"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// NewSession issues a signed session token for a logged-in employee.
func (s *SessionService) NewSession(employeeID, name string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		EmployeeID: employeeID,
		Name:       name,
		Role:       RoleHSD,
		Purpose:    purposeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   employeeID,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateSession validates a session token and returns its claims.
func (s *SessionService) ValidateSession(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Purpose != purposeSession {
		return nil, ErrWrongPurpose
	}
	return claims, nil
}

// NewResetToken issues a signed, short-lived password reset token.
func (s *SessionService) NewResetToken(userID int64) (string, error) {
	now := time.Now()
	claims := &ResetClaims{
		UserID:  userID,
		Role:    RoleHSD,
		Purpose: purposePasswordReset,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.ResetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", userID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}
	return signed, nil
}

// ValidateResetToken validates a password reset token and returns its claims.
func (s *SessionService) ValidateResetToken(tokenString string) (*ResetClaims, error) {
	claims := &ResetClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Purpose != purposePasswordReset {
		return nil, ErrWrongPurpose
	}
	return claims, nil
}

// SessionTTL exposes the configured session lifetime for cookie max-age.
func (s *SessionService) SessionTTL() time.Duration {
	return s.config.SessionTTL
}

func (s *SessionService) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
