package models

import (
	"time"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
)

// InvestmentEntryModel is one row of the append-only deposit ledger.
// BonusCreditKey is "{subscription_id}:{YYYY-MM}" for credited entries and
// NULL otherwise; its unique index allows one credit per subscription month.
type InvestmentEntryModel struct {
	ID                   string    `gorm:"primaryKey;size:64"`
	UserID               string    `gorm:"not null;size:64;index:idx_entries_sub_user,priority:2"`
	SubscriptionID       string    `gorm:"not null;size:64;index:idx_entries_sub_user,priority:1"`
	DepositDate          time.Time `gorm:"type:date;not null"`
	DepositMonth         string    `gorm:"not null;size:7"`
	AmountInvested       float64   `gorm:"not null"`
	GoldRate             float64   `gorm:"not null"`
	GramsPurchased       float64   `gorm:"not null"`
	PaymentMethod        string    `gorm:"not null;size:20"`
	TransactionReference *string   `gorm:"size:255"`
	PaymentProofURL      *string   `gorm:"column:payment_proof_url;size:1024"`
	BonusEarned          float64   `gorm:"not null;default:0"`
	IsBonusEligible      bool      `gorm:"not null;default:false"`
	IsBonusCredited      bool      `gorm:"not null;default:false"`
	BonusCreditKey       *string   `gorm:"size:80;uniqueIndex:uk_entries_bonus_credit"`
	Remarks              *string   `gorm:"size:1000"`
	Status               string    `gorm:"not null;size:20"`
	Metadata             AuditMetadataJSON
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (InvestmentEntryModel) TableName() string {
	return constants.TableInvestmentEntries
}
