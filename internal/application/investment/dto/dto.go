package dto

import (
	"time"

	commondto "github.com/bdorababu707/goldvault-investment-module/internal/application/common/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/investment"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
)

type InvestmentEntryDTO struct {
	ID                   string                 `json:"id"`
	UserID               string                 `json:"user_id"`
	SubscriptionID       string                 `json:"subscription_id"`
	DepositDate          string                 `json:"deposit_date"`
	AmountInvested       float64                `json:"amount_invested"`
	GoldRate             float64                `json:"gold_rate"`
	GramsPurchased       float64                `json:"grams_purchased"`
	PaymentMethod        string                 `json:"payment_method"`
	TransactionReference string                 `json:"transaction_reference,omitempty"`
	PaymentProofURL      string                 `json:"payment_proof_url,omitempty"`
	Remarks              string                 `json:"remarks,omitempty"`
	BonusEarned          float64                `json:"bonus_earned"`
	IsBonusEligible      bool                   `json:"is_bonus_eligible"`
	IsBonusCredited      bool                   `json:"is_bonus_credited"`
	Status               string                 `json:"status"`
	Metadata             *commondto.MetadataDTO `json:"metadata,omitempty"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
}

func ToInvestmentEntryDTO(e *investment.Entry) *InvestmentEntryDTO {
	if e == nil {
		return nil
	}
	d := e.Deposit()
	return &InvestmentEntryDTO{
		ID:                   e.ID(),
		UserID:               d.UserID,
		SubscriptionID:       d.SubscriptionID,
		DepositDate:          biztime.FormatDate(d.DepositDate),
		AmountInvested:       d.AmountInvested,
		GoldRate:             d.GoldRate,
		GramsPurchased:       d.GramsPurchased,
		PaymentMethod:        string(d.PaymentMethod),
		TransactionReference: d.TransactionReference,
		PaymentProofURL:      d.PaymentProofURL,
		Remarks:              d.Remarks,
		BonusEarned:          e.BonusEarned(),
		IsBonusEligible:      e.IsBonusEligible(),
		IsBonusCredited:      e.IsBonusCredited(),
		Status:               e.Status(),
		Metadata:             commondto.ToMetadataDTO(e.Metadata()),
		CreatedAt:            e.CreatedAt(),
		UpdatedAt:            e.UpdatedAt(),
	}
}

func ToInvestmentEntryDTOs(entries []*investment.Entry) []*InvestmentEntryDTO {
	out := make([]*InvestmentEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToInvestmentEntryDTO(e))
	}
	return out
}
