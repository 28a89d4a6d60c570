package meeting

import "errors"

var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrWrongVertical   = errors.New("meeting belongs to a different vertical")
)
