package models

import (
	"time"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
)

// InventoryModel holds the running totals of one subscription.
type InventoryModel struct {
	ID                    string  `gorm:"primaryKey;size:64"`
	UserID                string  `gorm:"not null;size:64;index"`
	SubscriptionID        string  `gorm:"not null;size:64;uniqueIndex"`
	GoldGrams24K          float64 `gorm:"column:gold_grams_24k;not null;default:0"`
	InvestedAmount        float64 `gorm:"not null;default:0"`
	BonusPercentageEarned float64 `gorm:"not null;default:0"`
	Currency              string  `gorm:"not null;size:3"`
	Status                string  `gorm:"not null;size:20"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (InventoryModel) TableName() string {
	return constants.TableInventories
}
