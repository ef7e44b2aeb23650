package notification

import (
	"context"
	"strconv"
	"time"
)

type Kind string

const (
	KindAccountCreated         Kind = "account_created"
	KindSubscriptionActive     Kind = "subscription_active"
	KindInvestmentConfirmation Kind = "investment_confirmation"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindAccountCreated, KindSubscriptionActive, KindInvestmentConfirmation:
		return true
	}
	return false
}

// Message is an email waiting to be rendered and sent by a worker.
// Data holds the template fields already formatted for display.
type Message struct {
	Kind       Kind              `json:"kind"`
	To         string            `json:"to"`
	Data       map[string]string `json:"data"`
	EnqueuedAt time.Time         `json:"enqueued_at"`
}

// Queue hands messages to the notification worker. Enqueue must not block on
// delivery.
type Queue interface {
	Enqueue(ctx context.Context, msg Message) error
}

func NewAccountCreated(to, fullName string) Message {
	return Message{
		Kind: KindAccountCreated,
		To:   to,
		Data: map[string]string{"full_name": fullName},
	}
}

func NewSubscriptionActive(to, fullName, planName string, minimumInvestmentAmount int) Message {
	return Message{
		Kind: KindSubscriptionActive,
		To:   to,
		Data: map[string]string{
			"full_name":                 fullName,
			"plan_name":                 planName,
			"minimum_investment_amount": strconv.Itoa(minimumInvestmentAmount),
		},
	}
}

// InvestmentConfirmation carries the deposit and the updated portfolio totals.
type InvestmentConfirmation struct {
	FullName       string
	PlanName       string
	Amount         float64
	GramsPurchased float64
	DepositDate    string
	Currency       string
	TotalInvested  float64
	TotalGrams     float64
}

func NewInvestmentConfirmation(to string, c InvestmentConfirmation) Message {
	return Message{
		Kind: KindInvestmentConfirmation,
		To:   to,
		Data: map[string]string{
			"full_name":       c.FullName,
			"plan_name":       c.PlanName,
			"amount":          formatNumber(c.Amount),
			"grams_purchased": formatNumber(c.GramsPurchased),
			"deposit_date":    c.DepositDate,
			"currency":        c.Currency,
			"total_invested":  formatNumber(c.TotalInvested),
			"total_grams":     formatNumber(c.TotalGrams),
		},
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
