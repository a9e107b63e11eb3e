package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedacademics/uap-backend/internal/app/models"
	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
	"github.com/unifiedacademics/uap-backend/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeEmployeeRepo, *fakeNotifier) {
	t.Helper()

	repo := &fakeEmployeeRepo{}
	notifier := &fakeNotifier{}
	sessions := auth.NewSessionService(auth.SessionConfig{
		Secret:        "test-secret",
		SessionTTL:    time.Hour,
		ResetTokenTTL: time.Hour,
		Issuer:        "uap.test",
	})
	svc := NewAuthService(repo, sessions, notifier, "http://localhost:8080", zerolog.Nop())
	return svc, repo, notifier
}

func seedAdmin(t *testing.T, repo *fakeEmployeeRepo, password string) *models.Employee {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	admin := &models.Employee{
		Password:   hash,
		Name:       "Asha Sharma",
		Email:      "asha@uap.academy",
		Department: models.DefaultDepartment,
		IsActive:   true,
	}
	require.NoError(t, repo.CreateWithGeneratedID(context.Background(), admin))
	return admin
}

func TestLoginIssuesSession(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	admin := seedAdmin(t, repo, "correct horse battery")

	employee, token, err := svc.Login(context.Background(), dto.LoginRequest{
		Role:       auth.RoleHSD,
		EmployeeID: admin.EmployeeID,
		Email:      admin.Email,
		Password:   "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, admin.EmployeeID, employee.EmployeeID)

	claims, err := svc.ValidateSession(token)
	require.NoError(t, err)
	assert.Equal(t, admin.EmployeeID, claims.EmployeeID)
	assert.Equal(t, auth.RoleHSD, claims.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	admin := seedAdmin(t, repo, "correct horse battery")
	ctx := context.Background()

	cases := []dto.LoginRequest{
		{Role: "student", EmployeeID: admin.EmployeeID, Email: admin.Email, Password: "correct horse battery"},
		{Role: auth.RoleHSD, EmployeeID: "DICT999", Email: admin.Email, Password: "correct horse battery"},
		{Role: auth.RoleHSD, EmployeeID: admin.EmployeeID, Email: "other@uap.academy", Password: "correct horse battery"},
		{Role: auth.RoleHSD, EmployeeID: admin.EmployeeID, Email: admin.Email, Password: "wrong"},
	}
	for _, req := range cases {
		_, _, err := svc.Login(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)
	admin := seedAdmin(t, repo, "correct horse battery")
	require.NoError(t, repo.Deactivate(context.Background(), admin.EmployeeID))

	_, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Role:       auth.RoleHSD,
		EmployeeID: admin.EmployeeID,
		Email:      admin.Email,
		Password:   "correct horse battery",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestForgotPasswordSendsResetLink(t *testing.T) {
	svc, repo, notifier := newAuthFixture(t)
	admin := seedAdmin(t, repo, "correct horse battery")

	err := svc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{
		Role:       auth.RoleHSD,
		EmployeeID: admin.EmployeeID,
		Email:      admin.Email,
	})
	require.NoError(t, err)

	messages := notifier.sent()
	require.Len(t, messages, 1)
	assert.Equal(t, admin.Email, messages[0].To)
	assert.Contains(t, messages[0].Body, "http://localhost:8080/reset-password?token=")
}

func TestForgotPasswordHidesUnknownAccounts(t *testing.T) {
	svc, _, notifier := newAuthFixture(t)

	err := svc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{
		Role:       auth.RoleHSD,
		EmployeeID: "DICT999",
		Email:      "nobody@uap.academy",
	})
	require.NoError(t, err, "unknown accounts must look like success")
	assert.Empty(t, notifier.sent())
}

func TestResetPasswordFlow(t *testing.T) {
	svc, repo, notifier := newAuthFixture(t)
	admin := seedAdmin(t, repo, "old password 123")
	ctx := context.Background()

	require.NoError(t, svc.ForgotPassword(ctx, dto.ForgotPasswordRequest{
		Role:       auth.RoleHSD,
		EmployeeID: admin.EmployeeID,
		Email:      admin.Email,
	}))

	messages := notifier.sent()
	require.Len(t, messages, 1)
	idx := strings.Index(messages[0].Body, "?token=")
	require.GreaterOrEqual(t, idx, 0, "reset email must carry a token")
	token := strings.Fields(messages[0].Body[idx+len("?token="):])[0]

	err := svc.ResetPassword(ctx, dto.ResetPasswordRequest{
		Token:           token,
		Password:        "brand new password",
		ConfirmPassword: "brand new password",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, dto.LoginRequest{
		Role:       auth.RoleHSD,
		EmployeeID: admin.EmployeeID,
		Email:      admin.Email,
		Password:   "brand new password",
	})
	assert.NoError(t, err)

	_, _, err = svc.Login(ctx, dto.LoginRequest{
		Role:       auth.RoleHSD,
		EmployeeID: admin.EmployeeID,
		Email:      admin.Email,
		Password:   "old password 123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestResetPasswordValidation(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	err := svc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: "x", Password: "short", ConfirmPassword: "short"})
	assert.ErrorIs(t, err, apperrors.ErrPasswordTooShort)

	err = svc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: "x", Password: "long enough", ConfirmPassword: "but different"})
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)

	err = svc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: "garbage", Password: "long enough", ConfirmPassword: "long enough"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
}

func TestValidateSessionMapsErrors(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.ValidateSession("not a token")
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)

	expired := auth.NewSessionService(auth.SessionConfig{
		Secret:     "test-secret",
		SessionTTL: -time.Minute,
		Issuer:     "uap.test",
	})
	token, err := expired.NewSession("DICT001", "Asha Sharma")
	require.NoError(t, err)

	_, err = svc.ValidateSession(token)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}
