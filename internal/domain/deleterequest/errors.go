package deleterequest

import "errors"

var (
	ErrRequestNotFound  = errors.New("delete request not found")
	ErrAlreadyReviewed  = errors.New("delete request has already been reviewed")
	ErrDuplicatePending = errors.New("a pending delete request already exists for this member")
)
