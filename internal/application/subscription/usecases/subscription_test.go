package usecases

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/inventory"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/investment"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/notification"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/subscription"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/user"
	apperrors "github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	return appErr.Code
}

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(user.Profile{
		Email:       "investor@goldvault.test",
		PhoneNumber: "501234567",
		FullName:    "Aisha Rahman",
	}, user.KYCDocuments{}, "ops@goldvault.test")
	require.NoError(t, err)
	return u
}

func newTestPlan(t *testing.T) *plan.Plan {
	t.Helper()
	p, err := plan.NewPlan("Gold Saver", "monthly gold", 12, 5, 1000, "ops@goldvault.test")
	require.NoError(t, err)
	return p
}

type createFixture struct {
	user      *user.User
	plan      *plan.Plan
	subs      *mockSubscriptionRepository
	inventory *mockInventoryRepository
	queue     *mockQueue
	uc        *CreateSubscriptionUseCase
	saved     *subscription.Subscription
	created   *inventory.Aggregate
}

func newCreateFixture(t *testing.T) *createFixture {
	f := &createFixture{user: newTestUser(t), plan: newTestPlan(t), queue: &mockQueue{}}
	f.subs = &mockSubscriptionRepository{CreateFunc: func(_ context.Context, sub *subscription.Subscription) error {
		f.saved = sub
		return nil
	}}
	f.inventory = &mockInventoryRepository{CreateFunc: func(_ context.Context, agg *inventory.Aggregate) error {
		f.created = agg
		return nil
	}}
	users := &mockUserRepository{GetByIDFunc: func(_ context.Context, id string) (*user.User, error) {
		if id == f.user.ID() {
			return f.user, nil
		}
		return nil, nil
	}}
	plans := &mockPlanRepository{GetByIDFunc: func(_ context.Context, id string) (*plan.Plan, error) {
		if id == f.plan.ID() {
			return f.plan, nil
		}
		return nil, nil
	}}
	f.uc = NewCreateSubscriptionUseCase(users, plans, f.subs, f.inventory, f.queue, "AED", logger.NewNopLogger())
	return f
}

func (f *createFixture) command() CreateSubscriptionCommand {
	return CreateSubscriptionCommand{
		UserID:        f.user.ID(),
		PlanID:        f.plan.ID(),
		PlanStartDate: "01-01-2025",
		ActorEmail:    "ops@goldvault.test",
	}
}

func TestCreateSubscriptionUseCase_Execute(t *testing.T) {
	f := newCreateFixture(t)

	result, err := f.uc.Execute(context.Background(), f.command())

	require.NoError(t, err)
	require.NotNil(t, f.saved)
	assert.Equal(t, f.saved.ID(), result.ID)
	assert.Equal(t, "01-01-2025", result.PlanStartDate)
	assert.Equal(t, 12.0, result.PlanSnapshot.BonusPercentage)
	assert.True(t, result.IsEligibleForBonus)

	require.NotNil(t, f.created)
	assert.Equal(t, f.saved.ID(), f.created.SubscriptionID())
	assert.Equal(t, "AED", f.created.Currency())
	assert.Equal(t, inventory.Totals{}, f.created.Totals())

	require.Len(t, f.queue.Messages, 1)
	assert.Equal(t, notification.KindSubscriptionActive, f.queue.Messages[0].Kind)
	assert.Equal(t, "1000", f.queue.Messages[0].Data["minimum_investment_amount"])
}

func TestCreateSubscriptionUseCase_Execute_StartDateIsUTCMidnight(t *testing.T) {
	f := newCreateFixture(t)

	_, err := f.uc.Execute(context.Background(), f.command())

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), f.saved.PlanStartDate())
}

func TestCreateSubscriptionUseCase_Execute_NotFound(t *testing.T) {
	f := newCreateFixture(t)

	cmd := f.command()
	cmd.UserID = "usr_missing"
	_, err := f.uc.Execute(context.Background(), cmd)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	assert.Equal(t, "User not found", apperrors.GetAppError(err).Message)

	cmd = f.command()
	cmd.PlanID = "pln_missing"
	_, err = f.uc.Execute(context.Background(), cmd)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	assert.Equal(t, "Plan not found or inactive", apperrors.GetAppError(err).Message)
	assert.Nil(t, f.saved)
}

func TestCreateSubscriptionUseCase_Execute_InactivePlan(t *testing.T) {
	f := newCreateFixture(t)
	status := plan.StatusInactive
	require.NoError(t, f.plan.ApplyUpdate(plan.Update{Status: &status}, "ops@goldvault.test"))

	_, err := f.uc.Execute(context.Background(), f.command())

	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestCreateSubscriptionUseCase_Execute_InvalidDate(t *testing.T) {
	f := newCreateFixture(t)
	cmd := f.command()
	cmd.PlanStartDate = "2025-01-01"

	_, err := f.uc.Execute(context.Background(), cmd)

	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestCreateSubscriptionUseCase_Execute_SideEffectFailuresAreNotFatal(t *testing.T) {
	f := newCreateFixture(t)
	f.inventory.CreateFunc = func(context.Context, *inventory.Aggregate) error { return errors.New("db down") }
	f.queue.Err = errors.New("redis down")

	result, err := f.uc.Execute(context.Background(), f.command())

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
}

func TestCreateSubscriptionUseCase_Execute_PersistError(t *testing.T) {
	f := newCreateFixture(t)
	f.subs.CreateFunc = func(context.Context, *subscription.Subscription) error { return errors.New("db down") }

	_, err := f.uc.Execute(context.Background(), f.command())

	require.Error(t, err)
	assert.False(t, apperrors.IsAppError(err))
	assert.Nil(t, f.created)
	assert.Empty(t, f.queue.Messages)
}

func TestListUserSubscriptionsUseCase_Execute(t *testing.T) {
	u := newTestUser(t)
	p := newTestPlan(t)
	sub, err := subscription.NewSubscription(u.ID(), p, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "ops@goldvault.test")
	require.NoError(t, err)

	repo := &mockSubscriptionRepository{ListByUserIDFunc: func(_ context.Context, userID string) ([]*subscription.Subscription, error) {
		if userID == u.ID() {
			return []*subscription.Subscription{sub}, nil
		}
		return nil, nil
	}}
	uc := NewListUserSubscriptionsUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), u.ID())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, sub.ID(), result[0].ID)

	result, err = uc.Execute(context.Background(), "usr_other")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestListTransactionsUseCase_Execute(t *testing.T) {
	entry, err := investment.NewEntry(investment.Deposit{
		UserID:         "usr_1",
		SubscriptionID: "sub_1",
		DepositDate:    time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		AmountInvested: 1000,
		GoldRate:       250,
		GramsPurchased: 4,
		PaymentMethod:  investment.PaymentMethodCash,
	}, investment.BonusDecision{Eligible: true, BonusEarned: 1, Credited: true}, "ops@goldvault.test")
	require.NoError(t, err)

	repo := &mockEntryRepository{ListBySubscriptionFunc: func(_ context.Context, userID, subID string) ([]*investment.Entry, error) {
		if userID == "usr_1" && subID == "sub_1" {
			return []*investment.Entry{entry}, nil
		}
		return nil, nil
	}}
	uc := NewListTransactionsUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), "usr_1", "sub_1")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "03-01-2025", result[0].DepositDate)

	_, err = uc.Execute(context.Background(), "usr_1", "sub_2")
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	assert.Equal(t, "No previous investment entries found for subscription id: sub_2", apperrors.GetAppError(err).Message)
}
