package deleterequest

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type CreateDeleteRequest struct {
	RollNo string `json:"roll_no"`
	Reason string `json:"reason"`

	// Filled from the session.
	RequestedBy string `json:"-"`
	Vertical    string `json:"-"`
}

func (r *CreateDeleteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RollNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "roll_no",
			Message: "roll_no is required",
		})
	}
	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewRequest struct {
	ID         string `json:"-"`
	Action     string `json:"action"`
	ReviewedBy string `json:"-"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Action != "approve" && r.Action != "reject" {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be either 'approve' or 'reject'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
