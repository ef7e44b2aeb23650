package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
)

// PlanSnapshot mirrors the plan fields frozen into a subscription.
type PlanSnapshot struct {
	PlanID                  string  `json:"plan_id"`
	PlanName                string  `json:"plan_name"`
	Description             string  `json:"description"`
	BonusPercentage         float64 `json:"bonus_percentage"`
	RelaxationDays          int     `json:"relaxation_days"`
	MinimumInvestmentAmount int     `json:"minimum_investment_amount"`
	Status                  string  `json:"status"`
}

// SubscriptionModel is the persistence model for user plan subscriptions.
type SubscriptionModel struct {
	ID                 string    `gorm:"primaryKey;size:64"`
	UserID             string    `gorm:"not null;size:64;index"`
	PlanID             string    `gorm:"not null;size:64;index"`
	PlanStartDate      time.Time `gorm:"type:date;not null"`
	IsEligibleForBonus bool      `gorm:"not null;default:true"`
	Status             string    `gorm:"not null;size:20"`
	PlanSnapshot       datatypes.JSONType[PlanSnapshot]
	Metadata           AuditMetadataJSON
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
