package mappers

import (
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/models"
)

// AdminMapper converts between admins and persistence models.
type AdminMapper interface {
	ToEntity(model *models.AdminModel) (*admin.Admin, error)
	ToModel(entity *admin.Admin) *models.AdminModel
}

type adminMapper struct{}

func NewAdminMapper() AdminMapper {
	return &adminMapper{}
}

func (m *adminMapper) ToEntity(model *models.AdminModel) (*admin.Admin, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := admin.ReconstructAdmin(
		model.ID,
		admin.Profile{
			Firstname:   model.Firstname,
			Surname:     model.Surname,
			Email:       model.Email,
			Country:     model.Country,
			CountryCode: model.CountryCode,
			PhoneNumber: model.PhoneNumber,
		},
		model.Password,
		admin.Role(model.UserType),
		[]string(model.UserRoles),
		derefString(model.CreatedBy),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct admin %s: %w", model.ID, err)
	}
	return entity, nil
}

func (m *adminMapper) ToModel(entity *admin.Admin) *models.AdminModel {
	if entity == nil {
		return nil
	}

	p := entity.Profile()
	return &models.AdminModel{
		ID:          entity.ID(),
		Firstname:   p.Firstname,
		Surname:     p.Surname,
		Email:       p.Email,
		Country:     p.Country,
		CountryCode: p.CountryCode,
		PhoneNumber: p.PhoneNumber,
		Password:    entity.PasswordHash(),
		UserType:    entity.Role().String(),
		UserRoles:   entity.UserRoles(),
		CreatedBy:   optionalString(entity.CreatedBy()),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}
