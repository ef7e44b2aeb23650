package dto

import (
	"time"

	commondto "github.com/bdorababu707/goldvault-investment-module/internal/application/common/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/user"
)

type UserDTO struct {
	ID                 string                 `json:"id"`
	Email              string                 `json:"email"`
	PhoneNumber        string                 `json:"phone_number"`
	CountryCode        string                 `json:"country_code"`
	Country            string                 `json:"country"`
	FullName           string                 `json:"full_name"`
	DateOfBirth        string                 `json:"date_of_birth,omitempty"`
	Nationality        string                 `json:"nationality,omitempty"`
	CountryOfResidence string                 `json:"country_of_residence,omitempty"`
	CountryOfBirth     string                 `json:"country_of_birth,omitempty"`
	FullAddress        string                 `json:"full_address,omitempty"`
	UserType           string                 `json:"user_type"`
	Status             string                 `json:"status"`
	KYCDocuments       *user.KYCDocuments     `json:"kyc_documents"`
	Metadata           *commondto.MetadataDTO `json:"metadata,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	p := u.Profile()
	out := &UserDTO{
		ID:                 u.ID(),
		Email:              p.Email,
		PhoneNumber:        p.PhoneNumber,
		CountryCode:        p.CountryCode,
		Country:            p.Country,
		FullName:           p.FullName,
		DateOfBirth:        p.DateOfBirth,
		Nationality:        p.Nationality,
		CountryOfResidence: p.CountryOfResidence,
		CountryOfBirth:     p.CountryOfBirth,
		FullAddress:        p.FullAddress,
		UserType:           u.UserType(),
		Status:             string(u.Status()),
		Metadata:           commondto.ToMetadataDTO(u.Metadata()),
		CreatedAt:          u.CreatedAt(),
		UpdatedAt:          u.UpdatedAt(),
	}
	if kyc := u.KYCDocuments(); !kyc.IsEmpty() {
		out.KYCDocuments = &kyc
	}
	return out
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	out := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}

// ListUsersResult is one page of users.
type ListUsersResult struct {
	Users    []*UserDTO
	Total    int64
	Page     int
	PageSize int
}
