package errors

import "errors"

var (
	ErrValidationFailed    = errors.New("validation failed")
	ErrEventNotFound       = errors.New("event not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrMembershipNotFound  = errors.New("membership not found")
	ErrRoleAlreadyAssigned = errors.New("user already holds a role for this event")
)
