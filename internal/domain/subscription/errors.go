package subscription

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrNotOwnedByUser       = errors.New("subscription does not belong to given user_id")
	ErrPlanNotActive        = errors.New("plan not found or inactive")
	ErrInvalidStatus        = errors.New("invalid subscription status")
)
