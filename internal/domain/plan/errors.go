package plan

import "errors"

var (
	ErrPlanNotFound      = errors.New("investment plan not found")
	ErrPlanInactive      = errors.New("investment plan inactive")
	ErrEmptyUpdate       = errors.New("no valid data provided for update")
	ErrInvalidStatus     = errors.New("invalid plan status")
	ErrInvalidBonus      = errors.New("bonus percentage must not be negative")
	ErrInvalidRelaxation = errors.New("relaxation days must not be negative")
	ErrInvalidMinimum    = errors.New("minimum investment amount must be positive")
)
