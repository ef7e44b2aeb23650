package investment

import (
	"fmt"
	"time"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/shared"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/id"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// StatusSuccess is the only status an entry is recorded with.
const StatusSuccess = "SUCCESS"

// Deposit is the admin-supplied part of an entry.
type Deposit struct {
	UserID               string
	SubscriptionID       string
	DepositDate          time.Time
	AmountInvested       float64
	GoldRate             float64
	GramsPurchased       float64
	PaymentMethod        PaymentMethod
	TransactionReference string
	PaymentProofURL      string
	Remarks              string
}

func (d Deposit) Validate() error {
	if d.UserID == "" || d.SubscriptionID == "" {
		return fmt.Errorf("user ID and subscription ID are required")
	}
	if d.AmountInvested <= 0 || d.GoldRate <= 0 || d.GramsPurchased <= 0 {
		return ErrInvalidAmount
	}
	if !d.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, d.PaymentMethod)
	}
	if d.DepositDate.IsZero() {
		return fmt.Errorf("deposit date is required")
	}
	return nil
}

// Entry is one recorded deposit. Entries are never changed after they are
// persisted.
type Entry struct {
	id              string
	deposit         Deposit
	bonusEarned     float64
	isBonusEligible bool
	isBonusCredited bool
	status          string
	metadata        shared.AuditMetadata
	createdAt       time.Time
	updatedAt       time.Time
}

// NewEntry builds an entry from a validated deposit and the policy decision.
func NewEntry(d Deposit, decision BonusDecision, createdBy string) (*Entry, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	entryID, err := id.NewInvestmentEntryID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate entry ID: %w", err)
	}

	d.DepositDate = biztime.DateOf(d.DepositDate)
	now := biztime.NowUTC()
	return &Entry{
		id:              entryID,
		deposit:         d,
		bonusEarned:     decision.BonusEarned,
		isBonusEligible: decision.Eligible,
		isBonusCredited: decision.Credited,
		status:          StatusSuccess,
		metadata:        shared.CreatedBy(createdBy),
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructEntry rebuilds an entry from persistence.
func ReconstructEntry(
	entryID string,
	d Deposit,
	bonusEarned float64,
	isBonusEligible, isBonusCredited bool,
	status string,
	metadata shared.AuditMetadata,
	createdAt, updatedAt time.Time,
) (*Entry, error) {
	if entryID == "" {
		return nil, fmt.Errorf("entry ID cannot be empty")
	}

	return &Entry{
		id:              entryID,
		deposit:         d,
		bonusEarned:     bonusEarned,
		isBonusEligible: isBonusEligible,
		isBonusCredited: isBonusCredited,
		status:          status,
		metadata:        metadata,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (e *Entry) ID() string                     { return e.id }
func (e *Entry) Deposit() Deposit               { return e.deposit }
func (e *Entry) UserID() string                 { return e.deposit.UserID }
func (e *Entry) SubscriptionID() string         { return e.deposit.SubscriptionID }
func (e *Entry) DepositDate() time.Time         { return e.deposit.DepositDate }
func (e *Entry) AmountInvested() float64        { return e.deposit.AmountInvested }
func (e *Entry) GoldRate() float64              { return e.deposit.GoldRate }
func (e *Entry) GramsPurchased() float64        { return e.deposit.GramsPurchased }
func (e *Entry) PaymentMethod() PaymentMethod   { return e.deposit.PaymentMethod }
func (e *Entry) BonusEarned() float64           { return e.bonusEarned }
func (e *Entry) IsBonusEligible() bool          { return e.isBonusEligible }
func (e *Entry) IsBonusCredited() bool          { return e.isBonusCredited }
func (e *Entry) Status() string                 { return e.status }
func (e *Entry) Metadata() shared.AuditMetadata { return e.metadata }
func (e *Entry) CreatedAt() time.Time           { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time           { return e.updatedAt }

// DepositMonth is the "YYYY-MM" calendar month of the deposit.
func (e *Entry) DepositMonth() string {
	return biztime.MonthKey(e.deposit.DepositDate)
}

// BonusCreditKey identifies the subscription month a credited entry claims.
// It is nil for entries without a bonus, so only one credited entry per
// subscription month can be stored.
func (e *Entry) BonusCreditKey() *string {
	if !e.isBonusCredited {
		return nil
	}
	key := e.deposit.SubscriptionID + ":" + e.DepositMonth()
	return &key
}

// DropBonusCredit removes the bonus from an entry that lost the race for its
// month's credit. It is only valid before the entry is persisted.
func (e *Entry) DropBonusCredit() {
	e.bonusEarned = 0
	e.isBonusCredited = false
}
