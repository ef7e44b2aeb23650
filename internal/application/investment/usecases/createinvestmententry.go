package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/investment/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/inventory"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/investment"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/notification"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/subscription"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/user"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/cache"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

// SubscriptionLocker serialises entry creation for one subscription so the
// prior entry count and the monthly credit check see every earlier write.
type SubscriptionLocker interface {
	Lock(ctx context.Context, subscriptionID string) (unlock func(), err error)
}

type CreateInvestmentEntryCommand struct {
	UserID          string
	SubscriptionID  string
	DepositDate     string
	AmountInvested  float64
	GoldRate        float64
	GramsPurchased  float64
	PaymentMethod   string
	TransactionRef  string
	PaymentProofURL string
	Remarks         string
	ActorEmail      string
}

// CreateInvestmentEntryUseCase records a deposit against a subscription.
//
// The ledger append and the inventory increment are separate writes. The
// entry is the source of truth: when the increment fails the entry stays and
// the aggregate is repaired by ReconcileInventoryUseCase.
type CreateInvestmentEntryUseCase struct {
	subscriptionRepo subscription.Repository
	entryRepo        investment.Repository
	inventoryRepo    inventory.Repository
	userRepo         user.Repository
	locker           SubscriptionLocker
	queue            notification.Queue
	policy           investment.BonusPolicy
	currency         string
	logger           logger.Interface
}

func NewCreateInvestmentEntryUseCase(
	subscriptionRepo subscription.Repository,
	entryRepo investment.Repository,
	inventoryRepo inventory.Repository,
	userRepo user.Repository,
	locker SubscriptionLocker,
	queue notification.Queue,
	policy investment.BonusPolicy,
	currency string,
	logger logger.Interface,
) *CreateInvestmentEntryUseCase {
	return &CreateInvestmentEntryUseCase{
		subscriptionRepo: subscriptionRepo,
		entryRepo:        entryRepo,
		inventoryRepo:    inventoryRepo,
		userRepo:         userRepo,
		locker:           locker,
		queue:            queue,
		policy:           policy,
		currency:         currency,
		logger:           logger,
	}
}

func (uc *CreateInvestmentEntryUseCase) Execute(ctx context.Context, cmd CreateInvestmentEntryCommand) (*dto.InvestmentEntryDTO, error) {
	depositDate, err := biztime.ParseDate(cmd.DepositDate)
	if err != nil {
		return nil, errors.NewValidationError("Invalid deposit_date, expected DD-MM-YYYY", err.Error())
	}

	deposit := investment.Deposit{
		UserID:               cmd.UserID,
		SubscriptionID:       cmd.SubscriptionID,
		DepositDate:          depositDate,
		AmountInvested:       cmd.AmountInvested,
		GoldRate:             cmd.GoldRate,
		GramsPurchased:       cmd.GramsPurchased,
		PaymentMethod:        investment.PaymentMethod(cmd.PaymentMethod),
		TransactionReference: cmd.TransactionRef,
		PaymentProofURL:      cmd.PaymentProofURL,
		Remarks:              cmd.Remarks,
	}
	if err := deposit.Validate(); err != nil {
		return nil, errors.NewValidationError("Invalid investment entry", err.Error())
	}

	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "subscription_id", cmd.SubscriptionID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Subscription not found with id: %s", cmd.SubscriptionID))
	}
	if err := sub.EnsureOwnedBy(cmd.UserID); err != nil {
		return nil, errors.NewBadRequestError("Subscription does not belong to given user_id")
	}

	unlock, err := uc.locker.Lock(ctx, sub.ID())
	if err != nil {
		if stderrors.Is(err, cache.ErrLockNotAcquired) {
			return nil, errors.NewConflictError("Another investment entry is being recorded for this subscription, please retry")
		}
		uc.logger.Errorw("failed to lock subscription", "subscription_id", sub.ID(), "error", err)
		return nil, fmt.Errorf("failed to lock subscription: %w", err)
	}
	defer unlock()

	entry, err := uc.appendEntry(ctx, sub, deposit, cmd.ActorEmail)
	if err != nil {
		return nil, err
	}

	if err := uc.inventoryRepo.Increment(ctx, sub.ID(), entry.Contribution()); err != nil {
		uc.logger.Errorw("inventory out of sync with ledger, reconcile required",
			"subscription_id", sub.ID(),
			"entry_id", entry.ID(),
			"error", err,
		)
	}

	uc.notify(ctx, sub, entry)

	uc.logger.Infow("investment entry created successfully",
		"entry_id", entry.ID(),
		"subscription_id", sub.ID(),
		"bonus_eligible", entry.IsBonusEligible(),
		"bonus_credited", entry.IsBonusCredited(),
	)
	return dto.ToInvestmentEntryDTO(entry), nil
}

// appendEntry evaluates the bonus and writes the entry. Losing the unique
// bonus credit for the month downgrades the entry to uncredited.
func (uc *CreateInvestmentEntryUseCase) appendEntry(
	ctx context.Context,
	sub *subscription.Subscription,
	deposit investment.Deposit,
	actorEmail string,
) (*investment.Entry, error) {
	monthsPassed, err := uc.entryRepo.CountBySubscription(ctx, sub.ID())
	if err != nil {
		uc.logger.Errorw("failed to count investment entries", "subscription_id", sub.ID(), "error", err)
		return nil, fmt.Errorf("failed to count investment entries: %w", err)
	}

	credited, err := uc.entryRepo.HasBonusCreditInMonth(ctx, sub.ID(), deposit.UserID, biztime.MonthKey(deposit.DepositDate))
	if err != nil {
		uc.logger.Errorw("failed to check monthly bonus credit", "subscription_id", sub.ID(), "error", err)
		return nil, fmt.Errorf("failed to check monthly bonus credit: %w", err)
	}

	snapshot := sub.PlanSnapshot()
	decision := uc.policy.Decide(investment.BonusInput{
		Terms: investment.Terms{
			BonusPercentage:         snapshot.BonusPercentage,
			RelaxationDays:          snapshot.RelaxationDays,
			MinimumInvestmentAmount: snapshot.MinimumInvestmentAmount,
		},
		PlanStart:                sub.PlanStartDate(),
		MonthsPassed:             monthsPassed,
		DepositDate:              deposit.DepositDate,
		Amount:                   deposit.AmountInvested,
		AlreadyCreditedThisMonth: credited,
	})

	entry, err := investment.NewEntry(deposit, decision, actorEmail)
	if err != nil {
		return nil, errors.NewValidationError("Invalid investment entry", err.Error())
	}

	err = uc.entryRepo.Create(ctx, entry)
	if stderrors.Is(err, investment.ErrBonusAlreadyCredited) {
		uc.logger.Warnw("monthly bonus already credited, recording entry without bonus",
			"subscription_id", sub.ID(),
			"month", entry.DepositMonth(),
		)
		entry.DropBonusCredit()
		err = uc.entryRepo.Create(ctx, entry)
	}
	if err != nil {
		uc.logger.Errorw("failed to persist investment entry", "subscription_id", sub.ID(), "error", err)
		return nil, fmt.Errorf("failed to persist investment entry: %w", err)
	}
	return entry, nil
}

// notify re-reads the aggregate and queues the confirmation email. Failures
// are logged only.
func (uc *CreateInvestmentEntryUseCase) notify(ctx context.Context, sub *subscription.Subscription, entry *investment.Entry) {
	agg, err := uc.inventoryRepo.GetBySubscriptionID(ctx, sub.ID())
	if err != nil {
		uc.logger.Warnw("failed to re-read inventory", "subscription_id", sub.ID(), "error", err)
	}

	u, err := uc.userRepo.GetByID(ctx, sub.UserID())
	if err != nil || u == nil || u.Email() == "" {
		uc.logger.Warnw("skipping investment confirmation, user unavailable",
			"user_id", sub.UserID(),
			"error", err,
		)
		return
	}

	confirmation := notification.InvestmentConfirmation{
		FullName:       u.FullName(),
		PlanName:       sub.PlanSnapshot().PlanName,
		Amount:         entry.AmountInvested(),
		GramsPurchased: entry.GramsPurchased(),
		DepositDate:    biztime.FormatDate(entry.DepositDate()),
		Currency:       uc.currency,
	}
	if agg != nil {
		confirmation.Currency = agg.Currency()
		confirmation.TotalInvested = agg.InvestedAmount()
		confirmation.TotalGrams = agg.GoldGrams24K()
	}

	if err := uc.queue.Enqueue(ctx, notification.NewInvestmentConfirmation(u.Email(), confirmation)); err != nil {
		uc.logger.Warnw("failed to enqueue investment confirmation", "entry_id", entry.ID(), "error", err)
	}
}
