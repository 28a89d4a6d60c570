package auth

import (
	"context"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byUsername map[string]user.User
	byRollNo   map[string]user.User
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByRollNo(ctx context.Context, rollNo string) (user.User, error) {
	u, ok := r.byRollNo[rollNo]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) CreateVerticalLead(ctx context.Context, lead user.User) (user.User, error) {
	panic("not used")
}

func (r *fakeUserRepo) ListVerticalLeads(ctx context.Context) ([]user.User, error) {
	panic("not used")
}

func (r *fakeUserRepo) UpdateVerticalLead(ctx context.Context, rollNo string, update user.VerticalLeadUpdate) (user.User, error) {
	panic("not used")
}

func (r *fakeUserRepo) DeleteVerticalLead(ctx context.Context, rollNo string) error {
	panic("not used")
}

func hash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func newTestService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()
	repo := &fakeUserRepo{
		byUsername: map[string]user.User{
			"admin": {
				ID:           "u1",
				Username:     "admin",
				Name:         "Office Bearer",
				Vertical:     "OB",
				Role:         user.RoleGlobalAdmin,
				PasswordHash: hash(t, "admin-secret"),
			},
		},
		byRollNo: map[string]user.User{
			"lead1": {
				ID:           "u2",
				RollNo:       "lead1",
				Name:         "Lead One",
				Vertical:     "Tech",
				Role:         user.RoleVerticalLead,
				PasswordHash: hash(t, "lead-secret"),
			},
		},
	}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	return NewAuthService(repo, jwtService), jwtService
}

func TestGlobalAdminLogin(t *testing.T) {
	svc, jwtService := newTestService(t)
	ctx := context.Background()

	result, err := svc.GlobalAdminLogin(ctx, auth.GlobalAdminLoginRequest{
		Username: "admin",
		Password: "admin-secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "global_admin", result.Session.Role)
	assert.Equal(t, "OB", result.Session.Vertical)

	decoded, err := jwtService.JWTAuth().Decode(result.Token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "session", claims["type"])
}

func TestGlobalAdminLoginBadPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GlobalAdminLogin(context.Background(), auth.GlobalAdminLoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownUserIsIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, badUser := svc.GlobalAdminLogin(ctx, auth.GlobalAdminLoginRequest{Username: "ghost", Password: "x"})
	_, badPass := svc.GlobalAdminLogin(ctx, auth.GlobalAdminLoginRequest{Username: "admin", Password: "x"})

	// Unknown user and wrong password produce the same error.
	assert.ErrorIs(t, badUser, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, badPass, auth.ErrInvalidCredentials)
}

func TestVerticalLeadLogin(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.VerticalLeadLogin(context.Background(), auth.VerticalLeadLoginRequest{
		RollNo:   "lead1",
		Password: "lead-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "vertical_lead", result.Session.Role)
	assert.Equal(t, "Tech", result.Session.Vertical)
	assert.Equal(t, "lead1", result.Session.RollNo)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, jwtService := newTestService(t)
	ctx := context.Background()

	result, err := svc.VerticalLeadLogin(ctx, auth.VerticalLeadLoginRequest{
		RollNo:   "lead1",
		Password: "lead-secret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.Token))
	assert.True(t, jwtService.IsTokenRevoked(result.Token))

	// An empty token is a no-op, not an error.
	assert.NoError(t, svc.Logout(ctx, ""))
}
