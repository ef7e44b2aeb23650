package plan

import "context"

// Repository persists investment plans.
// GetByID returns nil, nil when the plan does not exist.
type Repository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id string) (*Plan, error)
	ListActive(ctx context.Context) ([]*Plan, error)
	Update(ctx context.Context, plan *Plan) error
}
