package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// GlobalAdminLogin implements auth.AuthService.
func (a *AuthServiceImpl) GlobalAdminLogin(ctx context.Context, req auth.GlobalAdminLoginRequest) (auth.LoginResult, error) {
	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResult{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResult{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return a.issueSession(userData, req.Password)
}

// VerticalLeadLogin implements auth.AuthService.
func (a *AuthServiceImpl) VerticalLeadLogin(ctx context.Context, req auth.VerticalLeadLoginRequest) (auth.LoginResult, error) {
	userData, err := a.UserRepository.GetByRollNo(ctx, req.RollNo)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResult{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResult{}, fmt.Errorf("failed to get user by roll number: %w", err)
	}

	return a.issueSession(userData, req.Password)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	a.Service.RevokeToken(token)
	return nil
}

func (a *AuthServiceImpl) issueSession(userData user.User, password string) (auth.LoginResult, error) {
	if userData.PasswordHash == "" {
		return auth.LoginResult{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(password)); err != nil {
		return auth.LoginResult{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateSessionToken(
		userData.ID, userData.RollNo, userData.Username, userData.Vertical, userData.Role,
	)
	if err != nil {
		return auth.LoginResult{}, fmt.Errorf("failed to create session token: %w", err)
	}

	return auth.LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Session: auth.SessionResponse{
			UserID:   userData.ID,
			Role:     string(userData.Role),
			Name:     userData.Name,
			Username: userData.Username,
			RollNo:   userData.RollNo,
			Vertical: userData.Vertical,
		},
	}, nil
}
