package admin

import "errors"

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrPhoneExists        = errors.New("phone number already exists")
	ErrInvalidRole        = errors.New("invalid admin role")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
