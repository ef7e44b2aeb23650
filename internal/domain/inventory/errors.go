package inventory

import "errors"

var (
	ErrInventoryNotFound = errors.New("inventory not found")
	ErrInvalidStatus     = errors.New("invalid inventory status")
)
