package dto

import (
	"time"

	commondto "github.com/bdorababu707/goldvault-investment-module/internal/application/common/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/subscription"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
)

type PlanSnapshotDTO struct {
	PlanID                  string  `json:"plan_id"`
	PlanName                string  `json:"plan_name"`
	Description             string  `json:"description"`
	BonusPercentage         float64 `json:"bonus_percentage"`
	RelaxationDays          int     `json:"relaxation_days"`
	MinimumInvestmentAmount int     `json:"minimum_investment_amount"`
	Status                  string  `json:"status"`
}

type SubscriptionDTO struct {
	ID                 string                 `json:"id"`
	UserID             string                 `json:"user_id"`
	PlanID             string                 `json:"plan_id"`
	PlanStartDate      string                 `json:"plan_start_date"`
	IsEligibleForBonus bool                   `json:"is_eligible_for_bonus"`
	Status             string                 `json:"status"`
	PlanSnapshot       PlanSnapshotDTO        `json:"plan_snapshot"`
	Metadata           *commondto.MetadataDTO `json:"metadata,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

func ToSubscriptionDTO(s *subscription.Subscription) *SubscriptionDTO {
	if s == nil {
		return nil
	}
	return &SubscriptionDTO{
		ID:                 s.ID(),
		UserID:             s.UserID(),
		PlanID:             s.PlanID(),
		PlanStartDate:      biztime.FormatDate(s.PlanStartDate()),
		IsEligibleForBonus: s.IsEligibleForBonus(),
		Status:             string(s.Status()),
		PlanSnapshot:       PlanSnapshotDTO(s.PlanSnapshot()),
		Metadata:           commondto.ToMetadataDTO(s.Metadata()),
		CreatedAt:          s.CreatedAt(),
		UpdatedAt:          s.UpdatedAt(),
	}
}

func ToSubscriptionDTOs(subs []*subscription.Subscription) []*SubscriptionDTO {
	out := make([]*SubscriptionDTO, 0, len(subs))
	for _, s := range subs {
		out = append(out, ToSubscriptionDTO(s))
	}
	return out
}
