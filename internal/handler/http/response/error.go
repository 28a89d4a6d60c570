package response

import (
	"errors"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/deleterequest"
	"github.com/attendly/attendance-backend-go/internal/domain/meeting"
	"github.com/attendly/attendance-backend-go/internal/domain/member"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired session")
	case errors.Is(err, auth.ErrSessionRevoked):
		Unauthorized(w, "Session has been logged out")

	// Role guards
	case errors.Is(err, user.ErrGlobalAdminRequired):
		Forbidden(w, "Global admin access required")
	case errors.Is(err, user.ErrVerticalLeadRequired):
		Forbidden(w, "Vertical lead access required")
	case errors.Is(err, user.ErrVerticalContextMissing):
		Forbidden(w, "Session has no vertical context")

	// Vertical lead errors
	case errors.Is(err, user.ErrVerticalLeadNotFound):
		NotFound(w, "Vertical lead not found")
	case errors.Is(err, user.ErrRollNoExists):
		Conflict(w, "Roll number already registered")

	// Member errors
	case errors.Is(err, member.ErrMemberNotFound):
		NotFound(w, "Member not found")
	case errors.Is(err, member.ErrRollNoExists):
		Conflict(w, "Member with this roll number already exists")
	case errors.Is(err, member.ErrEmptySheet):
		BadRequest(w, "Uploaded sheet has no member rows")

	// Meeting errors
	case errors.Is(err, meeting.ErrMeetingNotFound):
		NotFound(w, "Meeting not found")

	// Attendance errors
	case errors.Is(err, attendance.ErrNoMarks):
		BadRequest(w, "memberAttendance must not be empty")

	// Delete request errors
	case errors.Is(err, deleterequest.ErrRequestNotFound):
		NotFound(w, "Delete request not found")
	case errors.Is(err, deleterequest.ErrAlreadyReviewed):
		Conflict(w, "Delete request has already been reviewed")
	case errors.Is(err, deleterequest.ErrDuplicatePending):
		Conflict(w, "A pending delete request already exists for this member")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
