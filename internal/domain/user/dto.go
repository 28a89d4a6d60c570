package user

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type CreateVerticalLeadRequest struct {
	Name       string `json:"name"`
	RollNo     string `json:"roll_no"`
	Year       int    `json:"year"`
	Department string `json:"department"`
	Vertical   string `json:"vertical"`
}

func (r *CreateVerticalLeadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
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
	if validator.IsEmpty(r.Vertical) {
		errs = append(errs, validator.ValidationError{
			Field:   "vertical",
			Message: "vertical is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateVerticalLeadRequest struct {
	RollNo     string  `json:"-"`
	Name       *string `json:"name"`
	Year       *int    `json:"year"`
	Department *string `json:"department"`
	Vertical   *string `json:"vertical"`
}

func (r *UpdateVerticalLeadRequest) Validate() error {
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
	if r.Vertical != nil && validator.IsEmpty(*r.Vertical) {
		errs = append(errs, validator.ValidationError{
			Field:   "vertical",
			Message: "vertical must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// VerticalLeadResponse is the lead profile without credential fields.
type VerticalLeadResponse struct {
	RollNo     string `json:"roll_no"`
	Name       string `json:"name"`
	Year       int    `json:"year"`
	Department string `json:"department"`
	Vertical   string `json:"vertical"`
}

func ToVerticalLeadResponse(u User) VerticalLeadResponse {
	return VerticalLeadResponse{
		RollNo:     u.RollNo,
		Name:       u.Name,
		Year:       u.Year,
		Department: u.Department,
		Vertical:   u.Vertical,
	}
}
