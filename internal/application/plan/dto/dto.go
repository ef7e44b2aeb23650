package dto

import (
	"time"

	commondto "github.com/bdorababu707/goldvault-investment-module/internal/application/common/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
)

type PlanDTO struct {
	ID                      string                 `json:"id"`
	PlanName                string                 `json:"plan_name"`
	Description             string                 `json:"description"`
	BonusPercentage         float64                `json:"bonus_percentage"`
	RelaxationDays          int                    `json:"relaxation_days"`
	MinimumInvestmentAmount int                    `json:"minimum_investment_amount"`
	Status                  string                 `json:"status"`
	Metadata                *commondto.MetadataDTO `json:"metadata,omitempty"`
	CreatedAt               time.Time              `json:"created_at"`
	UpdatedAt               time.Time              `json:"updated_at"`
}

func ToPlanDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:                      p.ID(),
		PlanName:                p.Name(),
		Description:             p.Description(),
		BonusPercentage:         p.BonusPercentage(),
		RelaxationDays:          p.RelaxationDays(),
		MinimumInvestmentAmount: p.MinimumInvestmentAmount(),
		Status:                  p.Status().String(),
		Metadata:                commondto.ToMetadataDTO(p.Metadata()),
		CreatedAt:               p.CreatedAt(),
		UpdatedAt:               p.UpdatedAt(),
	}
}

func ToPlanDTOs(plans []*plan.Plan) []*PlanDTO {
	out := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, ToPlanDTO(p))
	}
	return out
}
