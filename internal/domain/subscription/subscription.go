package subscription

import (
	"fmt"
	"time"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/shared"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/id"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusCompleted:
		return true
	}
	return false
}

// Subscription enrols a user in a plan from a fixed start date.
type Subscription struct {
	id                 string
	userID             string
	planID             string
	planStartDate      time.Time
	isEligibleForBonus bool
	status             Status
	planSnapshot       PlanSnapshot
	metadata           shared.AuditMetadata
	createdAt          time.Time
	updatedAt          time.Time
}

// NewSubscription enrols userID in p. The plan must be active; its current
// terms are frozen into the subscription.
func NewSubscription(userID string, p *plan.Plan, planStartDate time.Time, createdBy string) (*Subscription, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if p == nil || !p.IsActive() {
		return nil, ErrPlanNotActive
	}

	subID, err := id.NewSubscriptionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate subscription ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Subscription{
		id:                 subID,
		userID:             userID,
		planID:             p.ID(),
		planStartDate:      biztime.DateOf(planStartDate),
		isEligibleForBonus: true,
		status:             StatusActive,
		planSnapshot:       SnapshotOf(p),
		metadata:           shared.CreatedBy(createdBy),
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(
	subID, userID, planID string,
	planStartDate time.Time,
	isEligibleForBonus bool,
	status Status,
	snapshot PlanSnapshot,
	metadata shared.AuditMetadata,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if subID == "" {
		return nil, fmt.Errorf("subscription ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	return &Subscription{
		id:                 subID,
		userID:             userID,
		planID:             planID,
		planStartDate:      planStartDate,
		isEligibleForBonus: isEligibleForBonus,
		status:             status,
		planSnapshot:       snapshot,
		metadata:           metadata,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (s *Subscription) ID() string                     { return s.id }
func (s *Subscription) UserID() string                 { return s.userID }
func (s *Subscription) PlanID() string                 { return s.planID }
func (s *Subscription) PlanStartDate() time.Time       { return s.planStartDate }
func (s *Subscription) IsEligibleForBonus() bool       { return s.isEligibleForBonus }
func (s *Subscription) Status() Status                 { return s.status }
func (s *Subscription) PlanSnapshot() PlanSnapshot     { return s.planSnapshot }
func (s *Subscription) Metadata() shared.AuditMetadata { return s.metadata }
func (s *Subscription) CreatedAt() time.Time           { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time           { return s.updatedAt }

// EnsureOwnedBy returns ErrNotOwnedByUser when the subscription belongs to
// someone else.
func (s *Subscription) EnsureOwnedBy(userID string) error {
	if s.userID != userID {
		return ErrNotOwnedByUser
	}
	return nil
}
