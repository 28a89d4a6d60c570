package auth

import "context"

type AuthService interface {
	// GlobalAdminLogin authenticates an office bearer by username.
	GlobalAdminLogin(ctx context.Context, req GlobalAdminLoginRequest) (LoginResult, error)

	// VerticalLeadLogin authenticates a vertical lead by roll number.
	VerticalLeadLogin(ctx context.Context, req VerticalLeadLoginRequest) (LoginResult, error)

	// Logout revokes the given session token.
	Logout(ctx context.Context, token string) error
}
