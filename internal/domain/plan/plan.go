package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/shared"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/id"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s Status) String() string {
	return string(s)
}

// Plan is an investment plan definition. Subscriptions copy the plan at
// enrolment time, so changes here never reach existing subscriptions.
type Plan struct {
	id                      string
	name                    string
	description             string
	bonusPercentage         float64
	relaxationDays          int
	minimumInvestmentAmount int
	status                  Status
	metadata                shared.AuditMetadata
	createdAt               time.Time
	updatedAt               time.Time
}

// NewPlan creates an active plan.
func NewPlan(name, description string, bonusPercentage float64, relaxationDays, minimumInvestmentAmount int, createdBy string) (*Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if err := validateTerms(bonusPercentage, relaxationDays, minimumInvestmentAmount); err != nil {
		return nil, err
	}

	planID, err := id.NewPlanID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Plan{
		id:                      planID,
		name:                    name,
		description:             description,
		bonusPercentage:         bonusPercentage,
		relaxationDays:          relaxationDays,
		minimumInvestmentAmount: minimumInvestmentAmount,
		status:                  StatusActive,
		metadata:                shared.CreatedBy(createdBy),
		createdAt:               now,
		updatedAt:               now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(
	planID, name, description string,
	bonusPercentage float64,
	relaxationDays, minimumInvestmentAmount int,
	status Status,
	metadata shared.AuditMetadata,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if planID == "" {
		return nil, fmt.Errorf("plan ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	return &Plan{
		id:                      planID,
		name:                    name,
		description:             description,
		bonusPercentage:         bonusPercentage,
		relaxationDays:          relaxationDays,
		minimumInvestmentAmount: minimumInvestmentAmount,
		status:                  status,
		metadata:                metadata,
		createdAt:               createdAt,
		updatedAt:               updatedAt,
	}, nil
}

func validateTerms(bonusPercentage float64, relaxationDays, minimumInvestmentAmount int) error {
	if bonusPercentage < 0 {
		return ErrInvalidBonus
	}
	if relaxationDays < 0 {
		return ErrInvalidRelaxation
	}
	if minimumInvestmentAmount <= 0 {
		return ErrInvalidMinimum
	}
	return nil
}

func (p *Plan) ID() string                     { return p.id }
func (p *Plan) Name() string                   { return p.name }
func (p *Plan) Description() string            { return p.description }
func (p *Plan) BonusPercentage() float64       { return p.bonusPercentage }
func (p *Plan) RelaxationDays() int            { return p.relaxationDays }
func (p *Plan) MinimumInvestmentAmount() int   { return p.minimumInvestmentAmount }
func (p *Plan) Status() Status                 { return p.status }
func (p *Plan) Metadata() shared.AuditMetadata { return p.metadata }
func (p *Plan) CreatedAt() time.Time           { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time           { return p.updatedAt }

func (p *Plan) IsActive() bool {
	return p.status == StatusActive
}

// Update holds the optional fields of a plan change. Nil means unchanged.
type Update struct {
	Name            *string
	Description     *string
	BonusPercentage *float64
	RelaxationDays  *int
	Status          *Status
}

// IsEmpty reports whether the update carries no field at all.
func (u Update) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.BonusPercentage == nil &&
		u.RelaxationDays == nil && u.Status == nil
}

// ApplyUpdate changes the plan in place. The change is validated as a whole
// before any field is written.
func (p *Plan) ApplyUpdate(u Update, updatedBy string) error {
	if u.IsEmpty() {
		return ErrEmptyUpdate
	}

	name := p.name
	if u.Name != nil {
		name = strings.TrimSpace(*u.Name)
		if name == "" {
			return fmt.Errorf("plan name is required")
		}
	}
	bonus := p.bonusPercentage
	if u.BonusPercentage != nil {
		bonus = *u.BonusPercentage
	}
	relaxation := p.relaxationDays
	if u.RelaxationDays != nil {
		relaxation = *u.RelaxationDays
	}
	if err := validateTerms(bonus, relaxation, p.minimumInvestmentAmount); err != nil {
		return err
	}
	status := p.status
	if u.Status != nil {
		if !u.Status.IsValid() {
			return fmt.Errorf("%w: %s", ErrInvalidStatus, *u.Status)
		}
		status = *u.Status
	}

	p.name = name
	if u.Description != nil {
		p.description = *u.Description
	}
	p.bonusPercentage = bonus
	p.relaxationDays = relaxation
	p.status = status
	p.metadata.LastUpdatedBy = updatedBy
	p.updatedAt = biztime.NowUTC()
	return nil
}
