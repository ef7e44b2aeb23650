package usecases

import (
	"context"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
)

type mockPlanRepository struct {
	CreateFunc     func(ctx context.Context, p *plan.Plan) error
	GetByIDFunc    func(ctx context.Context, id string) (*plan.Plan, error)
	ListActiveFunc func(ctx context.Context) ([]*plan.Plan, error)
	UpdateFunc     func(ctx context.Context, p *plan.Plan) error
}

func (m *mockPlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanRepository) ListActive(ctx context.Context) ([]*plan.Plan, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockPlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}
