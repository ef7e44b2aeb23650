package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/user"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/models"
)

// UserMapper converts between investors and persistence models.
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	profile := user.Profile{
		Email:              model.Email,
		PhoneNumber:        model.PhoneNumber,
		Country:            model.Country,
		CountryCode:        model.CountryCode,
		FullName:           model.FullName,
		DateOfBirth:        derefString(model.DateOfBirth),
		Nationality:        model.Nationality,
		CountryOfResidence: model.CountryOfResidence,
		CountryOfBirth:     model.CountryOfBirth,
		FullAddress:        model.FullAddress,
	}

	var kyc user.KYCDocuments
	if stored := model.KYCDocuments.Data(); len(stored.Documents) > 0 {
		kyc.Documents = make(map[string]user.KYCDocument, len(stored.Documents))
		for name, doc := range stored.Documents {
			kyc.Documents[name] = user.KYCDocument(doc)
		}
	}

	entity, err := user.ReconstructUser(
		model.ID,
		profile,
		model.UserType,
		user.Status(model.Status),
		kyc,
		auditToEntity(model.Metadata),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %s: %w", model.ID, err)
	}
	return entity, nil
}

func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	p := entity.Profile()
	var kyc models.KYCDocuments
	if docs := entity.KYCDocuments(); !docs.IsEmpty() {
		kyc.Documents = make(map[string]models.KYCDocument, len(docs.Documents))
		for name, doc := range docs.Documents {
			kyc.Documents[name] = models.KYCDocument(doc)
		}
	}

	return &models.UserModel{
		ID:                 entity.ID(),
		Email:              p.Email,
		PhoneNumber:        p.PhoneNumber,
		Country:            p.Country,
		CountryCode:        p.CountryCode,
		FullName:           p.FullName,
		DateOfBirth:        optionalString(p.DateOfBirth),
		Nationality:        p.Nationality,
		CountryOfResidence: p.CountryOfResidence,
		CountryOfBirth:     p.CountryOfBirth,
		FullAddress:        p.FullAddress,
		UserType:           entity.UserType(),
		Status:             string(entity.Status()),
		KYCDocuments:       datatypes.NewJSONType(kyc),
		Metadata:           auditToModel(entity.Metadata()),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}

func (m *userMapper) ToEntities(list []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
