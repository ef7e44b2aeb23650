package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/shared"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/id"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusDeleted  Status = "DELETED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDeleted:
		return true
	}
	return false
}

// TypeInvestor is the only user type managed by this service.
const TypeInvestor = "USER"

// Profile is the personal data captured when an admin onboards an investor.
type Profile struct {
	Email              string
	PhoneNumber        string
	Country            string
	CountryCode        string
	FullName           string
	DateOfBirth        string
	Nationality        string
	CountryOfResidence string
	CountryOfBirth     string
	FullAddress        string
}

// User is an investor enrolled by an admin.
type User struct {
	id           string
	profile      Profile
	userType     string
	status       Status
	kycDocuments KYCDocuments
	metadata     shared.AuditMetadata
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an active investor. Emails are stored lowercased.
func NewUser(p Profile, kyc KYCDocuments, createdBy string) (*User, error) {
	p.Email = NormalizeEmail(p.Email)
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return nil, fmt.Errorf("invalid email address: %s", p.Email)
	}
	if strings.TrimSpace(p.PhoneNumber) == "" {
		return nil, fmt.Errorf("phone number is required")
	}

	userID, err := id.NewUserID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	now := biztime.NowUTC()
	return &User{
		id:           userID,
		profile:      p,
		userType:     TypeInvestor,
		status:       StatusActive,
		kycDocuments: kyc,
		metadata:     shared.CreatedBy(createdBy),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	userID string,
	p Profile,
	userType string,
	status Status,
	kyc KYCDocuments,
	metadata shared.AuditMetadata,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	return &User{
		id:           userID,
		profile:      p,
		userType:     userType,
		status:       status,
		kycDocuments: kyc,
		metadata:     metadata,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() string                     { return u.id }
func (u *User) Profile() Profile               { return u.profile }
func (u *User) Email() string                  { return u.profile.Email }
func (u *User) FullName() string               { return u.profile.FullName }
func (u *User) UserType() string               { return u.userType }
func (u *User) Status() Status                 { return u.status }
func (u *User) KYCDocuments() KYCDocuments     { return u.kycDocuments }
func (u *User) Metadata() shared.AuditMetadata { return u.metadata }
func (u *User) CreatedAt() time.Time           { return u.createdAt }
func (u *User) UpdatedAt() time.Time           { return u.updatedAt }

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
