package auth

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type GlobalAdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *GlobalAdminLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if !validator.IsEmpty(r.Username) && !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username may only contain letters, numbers, dots, underscores, and hyphens",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type VerticalLeadLoginRequest struct {
	RollNo   string `json:"roll_no"`
	Password string `json:"password"`
}

func (r *VerticalLeadLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RollNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "roll_no",
			Message: "roll_no is required",
		})
	}
	if !validator.IsEmpty(r.RollNo) && !validator.IsValidRollNo(r.RollNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "roll_no",
			Message: "roll_no must be 3-30 characters of letters, numbers, dots, underscores, or hyphens",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SessionResponse mirrors the profile the frontend caches for routing guards.
type SessionResponse struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	RollNo   string `json:"roll_no,omitempty"`
	Vertical string `json:"vertical,omitempty"`
}

// LoginResult carries the session token alongside the profile; the handler
// moves the token into an HTTP-only cookie and never serializes it.
type LoginResult struct {
	Token     string
	ExpiresAt int64
	Session   SessionResponse
}
