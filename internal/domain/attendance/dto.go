package attendance

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// UpdateAttendanceRequest is the bulk roster write:
// {"memberAttendance": {"<roll_no>": true, ...}}.
type UpdateAttendanceRequest struct {
	MeetingID        string          `json:"-"`
	MemberAttendance map[string]bool `json:"memberAttendance"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.MemberAttendance) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "memberAttendance",
			Message: "memberAttendance must contain at least one roll number",
		})
	}
	for rollNo := range r.MemberAttendance {
		if !validator.IsValidRollNo(rollNo) {
			errs = append(errs, validator.ValidationError{
				Field:   "memberAttendance",
				Message: "invalid roll number: " + rollNo,
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAttendanceResult mirrors the mongo-flavored counters the original
// API reported for a bulk upsert.
type UpdateAttendanceResult struct {
	Message  string `json:"message"`
	Modified int64  `json:"modified"`
	Upserted int64  `json:"upserted"`
}
