package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/id"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Totals are the running sums held by an aggregate. The same shape is used
// for the increment contributed by a single investment entry.
type Totals struct {
	InvestedAmount        float64
	GoldGrams24K          float64
	BonusPercentageEarned float64
}

// totalsPrecision is the number of decimal places compared when checking
// for drift between a stored aggregate and a ledger replay.
const totalsPrecision = 6

// Equal compares two totals at totalsPrecision decimal places.
func (t Totals) Equal(other Totals) bool {
	eq := func(a, b float64) bool {
		return decimal.NewFromFloat(a).Round(totalsPrecision).Equal(decimal.NewFromFloat(b).Round(totalsPrecision))
	}
	return eq(t.InvestedAmount, other.InvestedAmount) &&
		eq(t.GoldGrams24K, other.GoldGrams24K) &&
		eq(t.BonusPercentageEarned, other.BonusPercentageEarned)
}

// Aggregate accumulates a subscription's invested amount, gold and bonus.
// Totals only grow under normal operation; ReplaceTotals is the recovery path.
type Aggregate struct {
	id             string
	userID         string
	subscriptionID string
	totals         Totals
	currency       string
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

// NewAggregate creates a zeroed aggregate for a subscription.
func NewAggregate(userID, subscriptionID, currency string) (*Aggregate, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("subscription ID is required")
	}
	if currency == "" {
		return nil, fmt.Errorf("currency is required")
	}

	invID, err := id.NewInventoryID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate inventory ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Aggregate{
		id:             invID,
		userID:         userID,
		subscriptionID: subscriptionID,
		currency:       currency,
		status:         StatusActive,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructAggregate rebuilds an aggregate from persistence.
func ReconstructAggregate(
	invID, userID, subscriptionID string,
	totals Totals,
	currency string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Aggregate, error) {
	if invID == "" {
		return nil, fmt.Errorf("inventory ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	return &Aggregate{
		id:             invID,
		userID:         userID,
		subscriptionID: subscriptionID,
		totals:         totals,
		currency:       currency,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (a *Aggregate) ID() string             { return a.id }
func (a *Aggregate) UserID() string         { return a.userID }
func (a *Aggregate) SubscriptionID() string { return a.subscriptionID }
func (a *Aggregate) Totals() Totals         { return a.totals }
func (a *Aggregate) Currency() string       { return a.currency }
func (a *Aggregate) Status() Status         { return a.status }
func (a *Aggregate) CreatedAt() time.Time   { return a.createdAt }
func (a *Aggregate) UpdatedAt() time.Time   { return a.updatedAt }

func (a *Aggregate) InvestedAmount() float64        { return a.totals.InvestedAmount }
func (a *Aggregate) GoldGrams24K() float64          { return a.totals.GoldGrams24K }
func (a *Aggregate) BonusPercentageEarned() float64 { return a.totals.BonusPercentageEarned }

// ReplaceTotals sets the totals to values recomputed from the ledger and
// reports whether they differed from what was stored.
func (a *Aggregate) ReplaceTotals(t Totals) (drifted bool) {
	drifted = !a.totals.Equal(t)
	a.totals = t
	a.updatedAt = biztime.NowUTC()
	return drifted
}
