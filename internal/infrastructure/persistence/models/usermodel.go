package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
)

type KYCDocument struct {
	IDType   string `json:"id_type,omitempty"`
	IDNumber string `json:"id_number,omitempty"`
	Front    string `json:"front,omitempty"`
	Back     string `json:"back,omitempty"`
}

type KYCDocuments struct {
	Documents map[string]KYCDocument `json:"documents"`
}

// UserModel is the persistence model for investors.
type UserModel struct {
	ID                 string                           `gorm:"primaryKey;size:64"`
	Email              string                           `gorm:"not null;size:255;uniqueIndex"`
	PhoneNumber        string                           `gorm:"not null;size:32"`
	Country            string                           `gorm:"size:100"`
	CountryCode        string                           `gorm:"size:10"`
	FullName           string                           `gorm:"size:255"`
	DateOfBirth        *string                          `gorm:"size:20"`
	Nationality        string                           `gorm:"size:100"`
	CountryOfResidence string                           `gorm:"size:100"`
	CountryOfBirth     string                           `gorm:"size:100"`
	FullAddress        string                           `gorm:"size:500"`
	UserType           string                           `gorm:"not null;size:20"`
	Status             string                           `gorm:"not null;size:20"`
	KYCDocuments       datatypes.JSONType[KYCDocuments] `gorm:"column:kyc_documents"`
	Metadata           AuditMetadataJSON
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
