package investment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
)

// DefaultCycleDays approximates one month of a savings plan.
const DefaultCycleDays = 30

var monthsPerYear = decimal.NewFromInt(12)

// BonusPolicy decides whether a deposit is on time and what monthly bonus it
// earns. The Nth deposit of a subscription (zero based) is expected at
// start + N*cycleDays, not on the Nth calendar month.
type BonusPolicy struct {
	cycleDays int
}

// NewBonusPolicy returns a policy with the given cycle length. Non-positive
// values fall back to DefaultCycleDays.
func NewBonusPolicy(cycleDays int) BonusPolicy {
	if cycleDays <= 0 {
		cycleDays = DefaultCycleDays
	}
	return BonusPolicy{cycleDays: cycleDays}
}

func (p BonusPolicy) CycleDays() int {
	return p.cycleDays
}

// ExpectedDepositDate is the date the deposit following monthsPassed prior
// deposits is due.
func (p BonusPolicy) ExpectedDepositDate(start time.Time, monthsPassed int) time.Time {
	return biztime.AddDays(biztime.DateOf(start), monthsPassed*p.cycleDays)
}

// AllowedLastDate is the last on-time date for that deposit.
func (p BonusPolicy) AllowedLastDate(start time.Time, monthsPassed, relaxationDays int) time.Time {
	return biztime.AddDays(p.ExpectedDepositDate(start, monthsPassed), relaxationDays)
}

// IsOnTime reports whether a deposit made on depositDate for amount meets
// the schedule. Amounts below the minimum are never on time.
func (p BonusPolicy) IsOnTime(terms Terms, start time.Time, monthsPassed int, depositDate time.Time, amount float64) bool {
	if amount < float64(terms.MinimumInvestmentAmount) {
		return false
	}
	deadline := p.AllowedLastDate(start, monthsPassed, terms.RelaxationDays)
	return !biztime.DateOf(depositDate).After(deadline)
}

// MonthlyBonus converts an annual bonus percentage into the monthly credit,
// rounded to two decimal places.
func (p BonusPolicy) MonthlyBonus(annualPercentage float64) float64 {
	bonus, _ := decimal.NewFromFloat(annualPercentage).Div(monthsPerYear).Round(2).Float64()
	return bonus
}

// Terms are the plan values the policy needs, read from a subscription's
// plan snapshot.
type Terms struct {
	BonusPercentage         float64
	RelaxationDays          int
	MinimumInvestmentAmount int
}

// BonusInput describes one deposit being evaluated.
type BonusInput struct {
	Terms        Terms
	PlanStart    time.Time
	MonthsPassed int
	DepositDate  time.Time
	Amount       float64
	// AlreadyCreditedThisMonth is true when another entry of the same
	// subscription already earned a bonus in the deposit's calendar month.
	AlreadyCreditedThisMonth bool
}

// BonusDecision is the outcome of evaluating a deposit.
type BonusDecision struct {
	ExpectedDate    time.Time
	AllowedLastDate time.Time
	Eligible        bool
	BonusEarned     float64
	Credited        bool
}

// Decide evaluates a deposit. Eligible records timeliness independently of
// whether a bonus was actually paid.
func (p BonusPolicy) Decide(in BonusInput) BonusDecision {
	d := BonusDecision{
		ExpectedDate:    p.ExpectedDepositDate(in.PlanStart, in.MonthsPassed),
		AllowedLastDate: p.AllowedLastDate(in.PlanStart, in.MonthsPassed, in.Terms.RelaxationDays),
		Eligible:        p.IsOnTime(in.Terms, in.PlanStart, in.MonthsPassed, in.DepositDate, in.Amount),
	}
	if d.Eligible && !in.AlreadyCreditedThisMonth {
		d.BonusEarned = p.MonthlyBonus(in.Terms.BonusPercentage)
	}
	d.Credited = d.BonusEarned > 0
	return d
}
