package models

import (
	"time"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
)

// PlanModel is the persistence model for investment plans.
type PlanModel struct {
	ID                      string  `gorm:"primaryKey;size:64"`
	PlanName                string  `gorm:"not null;size:150"`
	Description             string  `gorm:"size:1000"`
	BonusPercentage         float64 `gorm:"not null;default:0"`
	RelaxationDays          int     `gorm:"not null;default:0"`
	MinimumInvestmentAmount int     `gorm:"not null"`
	Status                  string  `gorm:"not null;size:20;index"`
	Metadata                AuditMetadataJSON
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (PlanModel) TableName() string {
	return constants.TablePlans
}
