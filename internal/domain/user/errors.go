package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("user with this email already exist")
	ErrInvalidStatus      = errors.New("invalid user status")
)
