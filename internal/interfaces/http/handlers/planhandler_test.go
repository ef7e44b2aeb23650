package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plandto "github.com/bdorababu707/goldvault-investment-module/internal/application/plan/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/application/plan/usecases"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http/handlers/testutil"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreatePlanUC struct {
	result *plandto.PlanDTO
	err    error
	cmd    usecases.CreatePlanCommand
}

func (m *mockCreatePlanUC) Execute(ctx context.Context, cmd usecases.CreatePlanCommand) (*plandto.PlanDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdatePlanUC struct {
	result *plandto.PlanDTO
	err    error
	cmd    usecases.UpdatePlanCommand
}

func (m *mockUpdatePlanUC) Execute(ctx context.Context, cmd usecases.UpdatePlanCommand) (*plandto.PlanDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetPlanUC struct {
	result *plandto.PlanDTO
	err    error
	planID string
}

func (m *mockGetPlanUC) Execute(ctx context.Context, planID string) (*plandto.PlanDTO, error) {
	m.planID = planID
	return m.result, m.err
}

type mockListPlansUC struct {
	result []*plandto.PlanDTO
	err    error
}

func (m *mockListPlansUC) Execute(ctx context.Context) ([]*plandto.PlanDTO, error) {
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func createTestPlanDTO() *plandto.PlanDTO {
	return &plandto.PlanDTO{
		ID:                      "plan_abc",
		PlanName:                "Gold Saver",
		BonusPercentage:         5,
		RelaxationDays:          5,
		MinimumInvestmentAmount: 1000,
		Status:                  "ACTIVE",
	}
}

type planHandlerMocks struct {
	create *mockCreatePlanUC
	update *mockUpdatePlanUC
	get    *mockGetPlanUC
	list   *mockListPlansUC
}

func newTestPlanHandler() (*PlanHandler, *planHandlerMocks) {
	m := &planHandlerMocks{
		create: &mockCreatePlanUC{},
		update: &mockUpdatePlanUC{},
		get:    &mockGetPlanUC{},
		list:   &mockListPlansUC{},
	}
	return NewPlanHandler(m.create, m.update, m.get, m.list, testutil.NewMockLogger()), m
}

// =====================================================================
// CreatePlan
// =====================================================================

func TestPlanHandler_CreatePlan_Success(t *testing.T) {
	handler, mocks := newTestPlanHandler()
	mocks.create.result = createTestPlanDTO()

	c, w := testutil.NewTestContext(http.MethodPost, "/v1/admin/plans/create", map[string]any{
		"plan_name":                 "Gold Saver",
		"bonus_percentage":          5,
		"relaxation_days":           5,
		"minimum_investment_amount": 1000,
	})
	testutil.SetAuthContext(c, testutil.NewTestAdmin("adm_1", admin.RoleAdmin))

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := testutil.DecodeResponse(w)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Investment plan created successfully", resp.Comment)

	var data plandto.PlanDTO
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "plan_abc", data.ID)

	assert.Equal(t, "Gold Saver", mocks.create.cmd.PlanName)
	assert.Equal(t, 1000, mocks.create.cmd.MinimumInvestmentAmount)
	assert.Equal(t, "adm_1@goldvault.test", mocks.create.cmd.ActorEmail)
}

func TestPlanHandler_CreatePlan_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"minimum_investment_amount": 1000}},
		{"zero minimum", map[string]any{"plan_name": "P", "minimum_investment_amount": 0}},
		{"negative bonus", map[string]any{"plan_name": "P", "minimum_investment_amount": 10, "bonus_percentage": -1}},
		{"negative relaxation", map[string]any{"plan_name": "P", "minimum_investment_amount": 10, "relaxation_days": -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mocks := newTestPlanHandler()
			c, w := testutil.NewTestContext(http.MethodPost, "/v1/admin/plans/create", tt.body)

			handler.CreatePlan(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "error", testutil.DecodeResponse(w).Status)
			assert.Empty(t, mocks.create.cmd.PlanName)
		})
	}
}

func TestPlanHandler_CreatePlan_UseCaseError(t *testing.T) {
	handler, mocks := newTestPlanHandler()
	mocks.create.err = errors.NewInternalError("failed to create plan")

	c, w := testutil.NewTestContext(http.MethodPost, "/v1/admin/plans/create", map[string]any{
		"plan_name":                 "Gold Saver",
		"minimum_investment_amount": 1000,
	})

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// =====================================================================
// ListPlans / GetPlan
// =====================================================================

func TestPlanHandler_ListPlans(t *testing.T) {
	handler, mocks := newTestPlanHandler()
	mocks.list.result = []*plandto.PlanDTO{createTestPlanDTO()}

	c, w := testutil.NewTestContext(http.MethodGet, "/v1/admin/plans/all", nil)
	handler.ListPlans(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := testutil.DecodeResponse(w)
	assert.Equal(t, "Investment plans fetched successfully", resp.Comment)

	var data []plandto.PlanDTO
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Len(t, data, 1)
}

func TestPlanHandler_GetPlan(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		handler, mocks := newTestPlanHandler()
		mocks.get.result = createTestPlanDTO()

		c, w := testutil.NewTestContext(http.MethodGet, "/v1/admin/plans/id", nil)
		testutil.SetQueryParams(c, map[string]string{"plan_id": "plan_abc"})
		handler.GetPlan(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "plan_abc", mocks.get.planID)
	})

	t.Run("missing query param", func(t *testing.T) {
		handler, mocks := newTestPlanHandler()

		c, w := testutil.NewTestContext(http.MethodGet, "/v1/admin/plans/id", nil)
		handler.GetPlan(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, mocks.get.planID)
	})

	t.Run("not found", func(t *testing.T) {
		handler, mocks := newTestPlanHandler()
		mocks.get.err = errors.NewNotFoundError("Investment plan not found or not active")

		c, w := testutil.NewTestContext(http.MethodGet, "/v1/admin/plans/id", nil)
		testutil.SetQueryParams(c, map[string]string{"plan_id": "plan_missing"})
		handler.GetPlan(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := testutil.DecodeResponse(w)
		assert.Equal(t, "Investment plan not found or not active", resp.Comment)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

// =====================================================================
// UpdatePlan
// =====================================================================

func TestPlanHandler_UpdatePlan_PartialFields(t *testing.T) {
	handler, mocks := newTestPlanHandler()
	mocks.update.result = createTestPlanDTO()

	c, w := testutil.NewTestContext(http.MethodPatch, "/v1/admin/plans/update-plan", map[string]any{
		"bonus_percentage": 7.5,
		"status":           "INACTIVE",
	})
	testutil.SetQueryParams(c, map[string]string{"plan_id": "plan_abc"})
	testutil.SetAuthContext(c, testutil.NewTestAdmin("adm_2", admin.RoleAdmin))

	handler.UpdatePlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Investment plan updated successfully", testutil.DecodeResponse(w).Comment)

	cmd := mocks.update.cmd
	assert.Equal(t, "plan_abc", cmd.PlanID)
	require.NotNil(t, cmd.BonusPercentage)
	assert.Equal(t, 7.5, *cmd.BonusPercentage)
	require.NotNil(t, cmd.Status)
	assert.Equal(t, "INACTIVE", *cmd.Status)
	assert.Nil(t, cmd.PlanName)
	assert.Nil(t, cmd.RelaxationDays)
	assert.Equal(t, "adm_2@goldvault.test", cmd.ActorEmail)
}

func TestPlanHandler_UpdatePlan_InvalidStatus(t *testing.T) {
	handler, mocks := newTestPlanHandler()

	c, w := testutil.NewTestContext(http.MethodPatch, "/v1/admin/plans/update-plan", map[string]any{
		"status": "DELETED",
	})
	testutil.SetQueryParams(c, map[string]string{"plan_id": "plan_abc"})

	handler.UpdatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, string(testutil.DecodeResponse(w).Data), "status must be one of")
	assert.Empty(t, mocks.update.cmd.PlanID)
}

func TestPlanHandler_UpdatePlan_EmptyUpdateIsRejectedByUseCase(t *testing.T) {
	handler, mocks := newTestPlanHandler()
	mocks.update.err = errors.NewValidationError("No valid data provided for update")

	c, w := testutil.NewTestContext(http.MethodPatch, "/v1/admin/plans/update-plan", map[string]any{})
	testutil.SetQueryParams(c, map[string]string{"plan_id": "plan_abc"})

	handler.UpdatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No valid data provided for update", testutil.DecodeResponse(w).Comment)
}
