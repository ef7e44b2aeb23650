package dto

import (
	"time"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/inventory"
)

type InventoryDTO struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	SubscriptionID        string    `json:"subscription_id"`
	GoldGrams24K          float64   `json:"gold_grams_24k"`
	InvestedAmount        float64   `json:"invested_amount"`
	BonusPercentageEarned float64   `json:"bonus_percentage_earned"`
	Currency              string    `json:"currency"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func ToInventoryDTO(a *inventory.Aggregate) *InventoryDTO {
	if a == nil {
		return nil
	}
	return &InventoryDTO{
		ID:                    a.ID(),
		UserID:                a.UserID(),
		SubscriptionID:        a.SubscriptionID(),
		GoldGrams24K:          a.GoldGrams24K(),
		InvestedAmount:        a.InvestedAmount(),
		BonusPercentageEarned: a.BonusPercentageEarned(),
		Currency:              a.Currency(),
		Status:                string(a.Status()),
		CreatedAt:             a.CreatedAt(),
		UpdatedAt:             a.UpdatedAt(),
	}
}

// ReconcileResultDTO reports one ledger replay.
type ReconcileResultDTO struct {
	SubscriptionID string        `json:"subscription_id"`
	EntryCount     int           `json:"entry_count"`
	Provisioned    bool          `json:"provisioned"`
	Drifted        bool          `json:"drifted"`
	Before         *TotalsDTO    `json:"before,omitempty"`
	After          TotalsDTO     `json:"after"`
	Inventory      *InventoryDTO `json:"inventory"`
}

type TotalsDTO struct {
	InvestedAmount        float64 `json:"invested_amount"`
	GoldGrams24K          float64 `json:"gold_grams_24k"`
	BonusPercentageEarned float64 `json:"bonus_percentage_earned"`
}

func ToTotalsDTO(t inventory.Totals) TotalsDTO {
	return TotalsDTO{
		InvestedAmount:        t.InvestedAmount,
		GoldGrams24K:          t.GoldGrams24K,
		BonusPercentageEarned: t.BonusPercentageEarned,
	}
}
