package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(sessionTTL, resetTTL time.Duration) *SessionService {
	return NewSessionService(SessionConfig{
		Secret:        "test-secret",
		SessionTTL:    sessionTTL,
		ResetTokenTTL: resetTTL,
		Issuer:        "uap.test",
	})
}

func TestSessionRoundTrip(t *testing.T) {
	svc := newTestSessionService(time.Hour, time.Hour)

	token, err := svc.NewSession("DICT001", "Asha Rao")
	require.NoError(t, err)

	claims, err := svc.ValidateSession(token)
	require.NoError(t, err)
	assert.Equal(t, "DICT001", claims.EmployeeID)
	assert.Equal(t, "Asha Rao", claims.Name)
	assert.Equal(t, RoleHSD, claims.Role)
}

func TestResetTokenRoundTrip(t *testing.T) {
	svc := newTestSessionService(time.Hour, time.Hour)

	token, err := svc.NewResetToken(42)
	require.NoError(t, err)

	claims, err := svc.ValidateResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestTokenPurposeIsEnforced(t *testing.T) {
	svc := newTestSessionService(time.Hour, time.Hour)

	reset, err := svc.NewResetToken(42)
	require.NoError(t, err)
	_, err = svc.ValidateSession(reset)
	assert.ErrorIs(t, err, ErrWrongPurpose)

	session, err := svc.NewSession("DICT001", "Asha Rao")
	require.NoError(t, err)
	_, err = svc.ValidateResetToken(session)
	assert.ErrorIs(t, err, ErrWrongPurpose)
}

func TestExpiredSessionIsRejected(t *testing.T) {
	svc := newTestSessionService(-time.Minute, time.Hour)

	token, err := svc.NewSession("DICT001", "Asha Rao")
	require.NoError(t, err)

	_, err = svc.ValidateSession(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenSignedWithDifferentSecretIsRejected(t *testing.T) {
	svc := newTestSessionService(time.Hour, time.Hour)
	other := NewSessionService(SessionConfig{
		Secret:     "another-secret",
		SessionTTL: time.Hour,
		Issuer:     "uap.test",
	})

	token, err := other.NewSession("DICT001", "Asha Rao")
	require.NoError(t, err)

	_, err = svc.ValidateSession(token)
	assert.Error(t, err)
}

func TestSessionTTLAccessor(t *testing.T) {
	svc := newTestSessionService(12*time.Hour, time.Hour)
	assert.Equal(t, 12*time.Hour, svc.SessionTTL())
}
