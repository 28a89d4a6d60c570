package member

import "errors"

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrRollNoExists   = errors.New("member with this roll number already exists")
	ErrWrongVertical  = errors.New("member belongs to a different vertical")
	ErrEmptySheet     = errors.New("uploaded sheet has no member rows")
)
