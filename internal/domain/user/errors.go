package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrVerticalLeadNotFound   = errors.New("vertical lead not found")
	ErrRollNoExists           = errors.New("roll number already registered")
	ErrGlobalAdminRequired    = errors.New("global admin access required")
	ErrVerticalLeadRequired   = errors.New("vertical lead access required")
	ErrVerticalContextMissing = errors.New("session has no vertical context")
)
