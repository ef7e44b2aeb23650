package usecases

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
	apperrors "github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

func newTestPlan(t *testing.T) *plan.Plan {
	t.Helper()
	p, err := plan.NewPlan("Gold Saver", "monthly gold", 12, 5, 100, "creator@goldvault.test")
	require.NoError(t, err)
	return p
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	return appErr.Code
}

func TestCreatePlanUseCase_Execute(t *testing.T) {
	var saved *plan.Plan
	repo := &mockPlanRepository{CreateFunc: func(_ context.Context, p *plan.Plan) error {
		saved = p
		return nil
	}}
	uc := NewCreatePlanUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), CreatePlanCommand{
		PlanName:                "Gold Saver",
		BonusPercentage:         12,
		RelaxationDays:          5,
		MinimumInvestmentAmount: 100,
		ActorEmail:              "ops@goldvault.test",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, saved.ID(), result.ID)
	assert.Equal(t, "ACTIVE", result.Status)
	assert.Equal(t, "ops@goldvault.test", result.Metadata.CreatedBy.Email)
	assert.Nil(t, result.Metadata.LastUpdatedBy)
}

func TestCreatePlanUseCase_Execute_Invalid(t *testing.T) {
	uc := NewCreatePlanUseCase(&mockPlanRepository{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreatePlanCommand{PlanName: "x", MinimumInvestmentAmount: 0})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestCreatePlanUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &mockPlanRepository{CreateFunc: func(context.Context, *plan.Plan) error { return errors.New("db down") }}
	uc := NewCreatePlanUseCase(repo, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreatePlanCommand{PlanName: "x", MinimumInvestmentAmount: 10})
	require.Error(t, err)
	assert.False(t, apperrors.IsAppError(err))
}

func TestGetPlanUseCase_Execute(t *testing.T) {
	active := newTestPlan(t)
	inactive := newTestPlan(t)
	status := plan.StatusInactive
	require.NoError(t, inactive.ApplyUpdate(plan.Update{Status: &status}, "x"))

	repo := &mockPlanRepository{GetByIDFunc: func(_ context.Context, id string) (*plan.Plan, error) {
		switch id {
		case active.ID():
			return active, nil
		case inactive.ID():
			return inactive, nil
		}
		return nil, nil
	}}
	uc := NewGetPlanUseCase(repo, logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), active.ID())
	require.NoError(t, err)
	assert.Equal(t, "Gold Saver", got.PlanName)

	_, err = uc.Execute(context.Background(), inactive.ID())
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	_, err = uc.Execute(context.Background(), "plan_missing")
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestListPlansUseCase_Execute(t *testing.T) {
	repo := &mockPlanRepository{ListActiveFunc: func(context.Context) ([]*plan.Plan, error) {
		return []*plan.Plan{newTestPlan(t), newTestPlan(t)}, nil
	}}

	got, err := NewListPlansUseCase(repo, logger.NewNopLogger()).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpdatePlanUseCase_Execute(t *testing.T) {
	p := newTestPlan(t)
	var updated *plan.Plan
	repo := &mockPlanRepository{
		GetByIDFunc: func(context.Context, string) (*plan.Plan, error) { return p, nil },
		UpdateFunc: func(_ context.Context, in *plan.Plan) error {
			updated = in
			return nil
		},
	}
	uc := NewUpdatePlanUseCase(repo, logger.NewNopLogger())

	bonus := 24.0
	inactive := "INACTIVE"
	got, err := uc.Execute(context.Background(), UpdatePlanCommand{
		PlanID:          p.ID(),
		BonusPercentage: &bonus,
		Status:          &inactive,
		ActorEmail:      "editor@goldvault.test",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 24.0, got.BonusPercentage)
	assert.Equal(t, "INACTIVE", got.Status)
	assert.Equal(t, "editor@goldvault.test", got.Metadata.LastUpdatedBy.Email)
}

func TestUpdatePlanUseCase_Execute_Errors(t *testing.T) {
	uc := NewUpdatePlanUseCase(&mockPlanRepository{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), UpdatePlanCommand{PlanID: "plan_1"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	name := "New name"
	_, err = uc.Execute(context.Background(), UpdatePlanCommand{PlanID: "plan_missing", PlanName: &name})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	p := newTestPlan(t)
	repo := &mockPlanRepository{GetByIDFunc: func(context.Context, string) (*plan.Plan, error) { return p, nil }}
	bad := "ARCHIVED"
	_, err = NewUpdatePlanUseCase(repo, logger.NewNopLogger()).Execute(context.Background(), UpdatePlanCommand{PlanID: p.ID(), Status: &bad})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}
