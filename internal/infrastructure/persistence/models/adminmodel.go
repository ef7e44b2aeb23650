package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
)

// AdminModel is the persistence model for back-office admins.
type AdminModel struct {
	ID          string `gorm:"primaryKey;size:64"`
	Firstname   string `gorm:"not null;size:100"`
	Surname     string `gorm:"not null;size:100"`
	Email       string `gorm:"not null;size:255;uniqueIndex"`
	Country     string `gorm:"size:100"`
	CountryCode string `gorm:"size:10"`
	PhoneNumber string `gorm:"not null;size:32;uniqueIndex"`
	Password    string `gorm:"not null;size:255"`
	UserType    string `gorm:"not null;size:20"`
	UserRoles   datatypes.JSONSlice[string]
	CreatedBy   *string `gorm:"size:64"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (AdminModel) TableName() string {
	return constants.TableAdmins
}
