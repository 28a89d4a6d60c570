package jwt

import (
	"net/http"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateSessionToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, expiresAt, err := svc.GenerateSessionToken("u1", "lead1", "", "Tech", user.RoleVerticalLead)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "lead1", claims["roll_no"])
	assert.Equal(t, "Tech", claims["vertical"])
	assert.Equal(t, "vertical_lead", claims["role"])
	assert.Equal(t, "session", claims["type"])
}

func TestGenerateSessionTokenBadExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration")

	_, _, err := svc.GenerateSessionToken("u1", "", "admin", "OB", user.RoleGlobalAdmin)
	assert.Error(t, err)
}

func TestSessionCookies(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	expiresAt := time.Now().Add(time.Hour).Unix()
	cookie := svc.SessionCookie("token123", expiresAt)
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "token123", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, time.Unix(expiresAt, 0), cookie.Expires)

	expired := svc.ExpiredSessionCookie()
	assert.Equal(t, SessionCookieName, expired.Name)
	assert.Empty(t, expired.Value)
	assert.Equal(t, -1, expired.MaxAge)
}

func TestRevocation(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, _, err := svc.GenerateSessionToken("u1", "lead1", "", "Tech", user.RoleVerticalLead)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestSweepRevokedTokens(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	live, _, err := svc.GenerateSessionToken("u1", "lead1", "", "Tech", user.RoleVerticalLead)
	require.NoError(t, err)
	svc.RevokeToken(live)

	// An opaque token gets the current time as its expiry.
	svc.RevokeToken("opaque-token")

	// Nothing has expired yet.
	svc.SweepRevokedTokens(time.Now().Add(-time.Minute))
	assert.True(t, svc.IsTokenRevoked(live))
	assert.True(t, svc.IsTokenRevoked("opaque-token"))

	// Sweeping past the short-lived entry drops it, the live session stays.
	svc.SweepRevokedTokens(time.Now().Add(time.Minute))
	assert.True(t, svc.IsTokenRevoked(live))
	assert.False(t, svc.IsTokenRevoked("opaque-token"))
}
