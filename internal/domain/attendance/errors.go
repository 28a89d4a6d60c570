package attendance

import "errors"

var (
	ErrNoMarks = errors.New("memberAttendance must not be empty")
)
