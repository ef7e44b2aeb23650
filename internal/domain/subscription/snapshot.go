package subscription

import "github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"

// PlanSnapshot is the copy of a plan taken when the subscription was created.
// All bonus arithmetic for the subscription reads these values.
type PlanSnapshot struct {
	PlanID                  string  `json:"plan_id"`
	PlanName                string  `json:"plan_name"`
	Description             string  `json:"description"`
	BonusPercentage         float64 `json:"bonus_percentage"`
	RelaxationDays          int     `json:"relaxation_days"`
	MinimumInvestmentAmount int     `json:"minimum_investment_amount"`
	Status                  string  `json:"status"`
}

func SnapshotOf(p *plan.Plan) PlanSnapshot {
	return PlanSnapshot{
		PlanID:                  p.ID(),
		PlanName:                p.Name(),
		Description:             p.Description(),
		BonusPercentage:         p.BonusPercentage(),
		RelaxationDays:          p.RelaxationDays(),
		MinimumInvestmentAmount: p.MinimumInvestmentAmount(),
		Status:                  p.Status().String(),
	}
}
