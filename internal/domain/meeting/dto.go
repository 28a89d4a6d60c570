package meeting

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type CreateMeetingRequest struct {
	MeetingName string `json:"meeting_name"`
	Date        string `json:"date"`
	MOM         string `json:"m_o_m"`

	// Vertical and CreatedBy come from the session.
	Vertical  string `json:"-"`
	CreatedBy string `json:"-"`
}

func (r *CreateMeetingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MeetingName) {
		errs = append(errs, validator.ValidationError{
			Field:   "meeting_name",
			Message: "meeting_name is required",
		})
	}
	if len(r.MeetingName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "meeting_name",
			Message: "meeting_name must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateMeetingRequest struct {
	ID          string  `json:"-"`
	MeetingName *string `json:"meeting_name"`
	Date        *string `json:"date"`
	MOM         *string `json:"m_o_m"`
}

func (r *UpdateMeetingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MeetingName != nil && validator.IsEmpty(*r.MeetingName) {
		errs = append(errs, validator.ValidationError{
			Field:   "meeting_name",
			Message: "meeting_name must not be empty",
		})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
