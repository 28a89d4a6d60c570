package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and revokes the session tokens carried in the HTTP-only
// cookie. The frontend never sees the token value; identity travels only in
// the cookie.
type Service interface {
	GenerateSessionToken(userID string, rollNo string, username string, vertical string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	SessionCookie(token string, expiresAt int64) *http.Cookie
	ExpiredSessionCookie() *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
	SweepRevokedTokens(now time.Time)
}

// SessionCookieName is the cookie jwtauth.TokenFromCookie looks for.
const SessionCookieName = "jwt"

type JWTService struct {
	secretKey             string
	sessionExpirationTime string
	tokenAuth             *jwtauth.JWTAuth
	revokedTokens         map[string]int64
	mu                    sync.RWMutex
}

func NewJWTService(secretKey string, sessionExpirationTime string) Service {
	return &JWTService{
		secretKey:             secretKey,
		sessionExpirationTime: sessionExpirationTime,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:         make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateSessionToken(userID string, rollNo string, username string, vertical string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.sessionExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":  userID,
		"roll_no":  rollNo,
		"username": username,
		"vertical": vertical,
		"role":     string(role),
		"type":     "session",
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) SessionCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie clears the session cookie on logout.
func (j *JWTService) ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	exp := time.Now().Unix()
	if decoded, err := j.tokenAuth.Decode(token); err == nil {
		exp = decoded.Expiration().Unix()
	}
	j.revokedTokens[token] = exp
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// SweepRevokedTokens drops revocation entries whose tokens have expired on
// their own; the verifier rejects those regardless.
func (j *JWTService) SweepRevokedTokens(now time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for token, exp := range j.revokedTokens {
		if exp < now.Unix() {
			delete(j.revokedTokens, token)
		}
	}
}
