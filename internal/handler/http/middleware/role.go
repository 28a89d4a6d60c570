package middleware

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// GlobalAdminOnly requires the office bearer role
func GlobalAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrGlobalAdminRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleGlobalAdmin) {
			response.HandleError(w, user.ErrGlobalAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// VerticalLeadOnly requires the vertical lead role
func VerticalLeadOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrVerticalLeadRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleVerticalLead) {
			response.HandleError(w, user.ErrVerticalLeadRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
