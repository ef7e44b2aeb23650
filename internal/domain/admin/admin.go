package admin

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/id"
)

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleDeptAdmin  Role = "DEPT_ADMIN"
	RoleAdmin      Role = "ADMIN"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleDeptAdmin, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// creatorRole maps each role to the role allowed to create it.
// Super admins are bootstrapped with a shared secret instead.
var creatorRole = map[Role]Role{
	RoleDeptAdmin: RoleSuperAdmin,
	RoleAdmin:     RoleDeptAdmin,
}

// Profile is the identity data shared by every admin role.
type Profile struct {
	Firstname   string
	Surname     string
	Email       string
	Country     string
	CountryCode string
	PhoneNumber string
}

// Admin is a back-office operator.
type Admin struct {
	id           string
	profile      Profile
	passwordHash string
	role         Role
	userRoles    []string
	createdBy    string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAdmin creates an admin with an already hashed password. createdBy is
// the ID of the creating admin and is empty for super admins.
func NewAdmin(p Profile, passwordHash string, role Role, userRoles []string, createdBy string) (*Admin, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}
	p.Email = NormalizeEmail(p.Email)
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return nil, fmt.Errorf("invalid email address: %s", p.Email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if role != RoleAdmin {
		userRoles = nil
	}

	adminID, err := id.NewAdminID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate admin ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Admin{
		id:           adminID,
		profile:      p,
		passwordHash: passwordHash,
		role:         role,
		userRoles:    userRoles,
		createdBy:    createdBy,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructAdmin rebuilds an admin from persistence.
func ReconstructAdmin(
	adminID string,
	p Profile,
	passwordHash string,
	role Role,
	userRoles []string,
	createdBy string,
	createdAt, updatedAt time.Time,
) (*Admin, error) {
	if adminID == "" {
		return nil, fmt.Errorf("admin ID cannot be empty")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	return &Admin{
		id:           adminID,
		profile:      p,
		passwordHash: passwordHash,
		role:         role,
		userRoles:    userRoles,
		createdBy:    createdBy,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Admin) ID() string           { return a.id }
func (a *Admin) Profile() Profile     { return a.profile }
func (a *Admin) Email() string        { return a.profile.Email }
func (a *Admin) PasswordHash() string { return a.passwordHash }
func (a *Admin) Role() Role           { return a.role }
func (a *Admin) UserRoles() []string  { return a.userRoles }
func (a *Admin) CreatedBy() string    { return a.createdBy }
func (a *Admin) CreatedAt() time.Time { return a.createdAt }
func (a *Admin) UpdatedAt() time.Time { return a.updatedAt }

// CanCreate reports whether this admin may create admins of the given role.
func (a *Admin) CanCreate(role Role) bool {
	required, ok := creatorRole[role]
	return ok && a.role == required
}

// VerifyPassword checks password against the stored hash.
func (a *Admin) VerifyPassword(password string, hasher PasswordHasher) error {
	if err := hasher.Verify(password, a.passwordHash); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
