package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "Nishant", enum.RoleOwner)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "Nishant", claims.Name)
	require.Equal(t, enum.RoleOwner, claims.Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := m.GenerateRefreshToken(userID)
	require.NoError(t, err)

	got, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	// A refresh token must not open a session
	refresh, err := m.GenerateRefreshToken(userID)
	require.NoError(t, err)
	_, err = m.ValidateAccessToken(refresh)
	require.Error(t, err)

	// An access token must not mint new token pairs
	access, err := m.GenerateAccessToken(userID, "Nishant", enum.RoleStaff)
	require.NoError(t, err)
	_, err = m.ValidateRefreshToken(access)
	require.Error(t, err)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("other-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "Nishant", enum.RoleStaff)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "Nishant", enum.RoleStaff)
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	require.Error(t, err)
}
