package investment

import (
	"github.com/shopspring/decimal"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/inventory"
)

// Contribution is what a single entry adds to its inventory aggregate.
func (e *Entry) Contribution() inventory.Totals {
	t := inventory.Totals{
		InvestedAmount: e.deposit.AmountInvested,
		GoldGrams24K:   e.deposit.GramsPurchased,
	}
	if e.isBonusCredited {
		t.BonusPercentageEarned = e.bonusEarned
	}
	return t
}

// Replay sums the contributions of entries. The result is what the
// aggregate of their subscription should hold.
func Replay(entries []*Entry) inventory.Totals {
	invested, grams, bonus := decimal.Zero, decimal.Zero, decimal.Zero
	for _, e := range entries {
		c := e.Contribution()
		invested = invested.Add(decimal.NewFromFloat(c.InvestedAmount))
		grams = grams.Add(decimal.NewFromFloat(c.GoldGrams24K))
		bonus = bonus.Add(decimal.NewFromFloat(c.BonusPercentageEarned))
	}
	return inventory.Totals{
		InvestedAmount:        invested.InexactFloat64(),
		GoldGrams24K:          grams.InexactFloat64(),
		BonusPercentageEarned: bonus.InexactFloat64(),
	}
}
