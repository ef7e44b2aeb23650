package mappers

import (
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/investment"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/models"
)

// InvestmentEntryMapper converts between ledger entries and persistence models.
type InvestmentEntryMapper interface {
	ToEntity(model *models.InvestmentEntryModel) (*investment.Entry, error)
	ToModel(entity *investment.Entry) *models.InvestmentEntryModel
	ToEntities(models []*models.InvestmentEntryModel) ([]*investment.Entry, error)
}

type investmentEntryMapper struct{}

func NewInvestmentEntryMapper() InvestmentEntryMapper {
	return &investmentEntryMapper{}
}

func (m *investmentEntryMapper) ToEntity(model *models.InvestmentEntryModel) (*investment.Entry, error) {
	if model == nil {
		return nil, nil
	}

	deposit := investment.Deposit{
		UserID:               model.UserID,
		SubscriptionID:       model.SubscriptionID,
		DepositDate:          model.DepositDate.UTC(),
		AmountInvested:       model.AmountInvested,
		GoldRate:             model.GoldRate,
		GramsPurchased:       model.GramsPurchased,
		PaymentMethod:        investment.PaymentMethod(model.PaymentMethod),
		TransactionReference: derefString(model.TransactionReference),
		PaymentProofURL:      derefString(model.PaymentProofURL),
		Remarks:              derefString(model.Remarks),
	}

	entity, err := investment.ReconstructEntry(
		model.ID,
		deposit,
		model.BonusEarned,
		model.IsBonusEligible,
		model.IsBonusCredited,
		model.Status,
		auditToEntity(model.Metadata),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct investment entry %s: %w", model.ID, err)
	}
	return entity, nil
}

func (m *investmentEntryMapper) ToModel(entity *investment.Entry) *models.InvestmentEntryModel {
	if entity == nil {
		return nil
	}

	d := entity.Deposit()
	return &models.InvestmentEntryModel{
		ID:                   entity.ID(),
		UserID:               d.UserID,
		SubscriptionID:       d.SubscriptionID,
		DepositDate:          d.DepositDate,
		DepositMonth:         entity.DepositMonth(),
		AmountInvested:       d.AmountInvested,
		GoldRate:             d.GoldRate,
		GramsPurchased:       d.GramsPurchased,
		PaymentMethod:        string(d.PaymentMethod),
		TransactionReference: optionalString(d.TransactionReference),
		PaymentProofURL:      optionalString(d.PaymentProofURL),
		BonusEarned:          entity.BonusEarned(),
		IsBonusEligible:      entity.IsBonusEligible(),
		IsBonusCredited:      entity.IsBonusCredited(),
		BonusCreditKey:       entity.BonusCreditKey(),
		Remarks:              optionalString(d.Remarks),
		Status:               entity.Status(),
		Metadata:             auditToModel(entity.Metadata()),
		CreatedAt:            entity.CreatedAt(),
		UpdatedAt:            entity.UpdatedAt(),
	}
}

func (m *investmentEntryMapper) ToEntities(list []*models.InvestmentEntryModel) ([]*investment.Entry, error) {
	entities := make([]*investment.Entry, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
