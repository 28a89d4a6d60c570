package http

import (
	"context"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// Session is the identity decoded from the verified session cookie.
type Session struct {
	UserID   string
	Role     string
	RollNo   string
	Username string
	Vertical string
}

// Scope is the vertical filter a session may query with. Global admins see
// every vertical; leads only their own.
func (s Session) Scope() string {
	if s.Role == string(user.RoleGlobalAdmin) {
		return ""
	}
	return s.Vertical
}

// Actor is the audit identifier: roll number for leads, username for admins.
func (s Session) Actor() string {
	if s.RollNo != "" {
		return s.RollNo
	}
	return s.Username
}

func sessionFromContext(ctx context.Context) (Session, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Session{}, auth.ErrInvalidToken
	}

	s := Session{}
	if v, ok := claims["user_id"].(string); ok {
		s.UserID = v
	}
	if v, ok := claims["role"].(string); ok {
		s.Role = v
	}
	if v, ok := claims["roll_no"].(string); ok {
		s.RollNo = v
	}
	if v, ok := claims["username"].(string); ok {
		s.Username = v
	}
	if v, ok := claims["vertical"].(string); ok {
		s.Vertical = v
	}
	if s.UserID == "" || s.Role == "" {
		return Session{}, auth.ErrInvalidToken
	}
	return s, nil
}
