package member

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type AddMemberRequest struct {
	Name       string `json:"name"`
	RollNo     string `json:"roll_no"`
	Year       int    `json:"year"`
	Department string `json:"department"`

	// Vertical comes from the session, not the request body.
	Vertical string `json:"-"`
}

func (r *AddMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
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
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1 and 5",
		})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateMemberRequest struct {
	RollNo     string  `json:"-"`
	Name       *string `json:"name"`
	Year       *int    `json:"year"`
	Department *string `json:"department"`
}

func (r *UpdateMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Year != nil && !validator.IsValidYear(*r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1 and 5",
		})
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UploadResult summarizes an XLSX bulk upload.
type UploadResult struct {
	Message  string   `json:"message"`
	Added    int      `json:"added"`
	Skipped  int      `json:"skipped"`
	Failures []string `json:"failures,omitempty"`
}
