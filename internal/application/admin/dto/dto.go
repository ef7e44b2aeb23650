package dto

import (
	"time"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
)

// AdminDTO never carries the password hash.
type AdminDTO struct {
	ID          string    `json:"id"`
	Firstname   string    `json:"firstname"`
	Surname     string    `json:"surname"`
	Email       string    `json:"email"`
	Country     string    `json:"country"`
	CountryCode string    `json:"country_code"`
	PhoneNumber string    `json:"phone_number"`
	UserType    string    `json:"user_type"`
	UserRoles   []string  `json:"user_roles,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToAdminDTO(a *admin.Admin) *AdminDTO {
	if a == nil {
		return nil
	}
	p := a.Profile()
	return &AdminDTO{
		ID:          a.ID(),
		Firstname:   p.Firstname,
		Surname:     p.Surname,
		Email:       p.Email,
		Country:     p.Country,
		CountryCode: p.CountryCode,
		PhoneNumber: p.PhoneNumber,
		UserType:    a.Role().String(),
		UserRoles:   a.UserRoles(),
		CreatedBy:   a.CreatedBy(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

type LoginDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
