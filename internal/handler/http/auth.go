package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	GlobalAdminLogin(w http.ResponseWriter, r *http.Request)
	VerticalLeadLogin(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// GlobalAdminLogin implements AuthHandler.
func (h *authHandlerImpl) GlobalAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.GlobalAdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode login request", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.authService.GlobalAdminLogin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.SessionCookie(result.Token, result.ExpiresAt))
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    result.Session,
	})
}

// VerticalLeadLogin implements AuthHandler.
func (h *authHandlerImpl) VerticalLeadLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.VerticalLeadLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode login request", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.authService.VerticalLeadLogin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.SessionCookie(result.Token, result.ExpiresAt))
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    result.Session,
	})
}

// Logout implements AuthHandler.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(jwt.SessionCookieName); err == nil {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	http.SetCookie(w, h.jwtService.ExpiredSessionCookie())
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Logout successful",
	})
}
