package investment

import "errors"

var (
	ErrInvalidAmount        = errors.New("amount invested, gold rate and grams purchased must be positive")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	// ErrBonusAlreadyCredited is returned by Repository.Create when another
	// entry already holds the bonus credit for the same subscription month.
	ErrBonusAlreadyCredited = errors.New("bonus already credited for this subscription month")
)
