package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/shared"
)

func newValidPlan(t *testing.T) *Plan {
	t.Helper()
	p, err := NewPlan("Gold Saver", "monthly gold plan", 12, 5, 100, "admin@goldvault.test")
	require.NoError(t, err)
	return p
}

func TestNewPlan_ValidInput(t *testing.T) {
	p := newValidPlan(t)

	assert.Contains(t, p.ID(), "plan_")
	assert.Equal(t, "Gold Saver", p.Name())
	assert.Equal(t, 12.0, p.BonusPercentage())
	assert.Equal(t, 5, p.RelaxationDays())
	assert.Equal(t, 100, p.MinimumInvestmentAmount())
	assert.Equal(t, StatusActive, p.Status())
	assert.True(t, p.IsActive())
	assert.Equal(t, "admin@goldvault.test", p.Metadata().CreatedBy)
	assert.Equal(t, p.CreatedAt(), p.UpdatedAt())
}

func TestNewPlan_InvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		planName   string
		bonus      float64
		relaxation int
		minimum    int
		wantErr    error
	}{
		{"negative bonus", "p", -1, 0, 100, ErrInvalidBonus},
		{"negative relaxation", "p", 1, -1, 100, ErrInvalidRelaxation},
		{"zero minimum", "p", 1, 0, 0, ErrInvalidMinimum},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPlan(tc.planName, "", tc.bonus, tc.relaxation, tc.minimum, "a@b.c")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, err := NewPlan("   ", "", 1, 1, 1, "a@b.c")
	assert.Error(t, err)
}

func TestReconstructPlan_RejectsUnknownStatus(t *testing.T) {
	now := time.Now().UTC()
	_, err := ReconstructPlan("plan_x", "n", "", 1, 1, 1, Status("ARCHIVED"), shared.AuditMetadata{}, now, now)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ReconstructPlan("", "n", "", 1, 1, 1, StatusActive, shared.AuditMetadata{}, now, now)
	assert.Error(t, err)
}

func TestApplyUpdate_EmptyUpdate(t *testing.T) {
	p := newValidPlan(t)
	assert.ErrorIs(t, p.ApplyUpdate(Update{}, "x@y.z"), ErrEmptyUpdate)
}

func TestApplyUpdate_ChangesFields(t *testing.T) {
	p := newValidPlan(t)
	name := "Gold Saver Plus"
	bonus := 18.0
	inactive := StatusInactive

	err := p.ApplyUpdate(Update{Name: &name, BonusPercentage: &bonus, Status: &inactive}, "editor@goldvault.test")

	require.NoError(t, err)
	assert.Equal(t, "Gold Saver Plus", p.Name())
	assert.Equal(t, 18.0, p.BonusPercentage())
	assert.Equal(t, 5, p.RelaxationDays())
	assert.False(t, p.IsActive())
	assert.Equal(t, "editor@goldvault.test", p.Metadata().LastUpdatedBy)
	assert.Equal(t, "admin@goldvault.test", p.Metadata().CreatedBy)
}

func TestApplyUpdate_InvalidValueLeavesPlanUntouched(t *testing.T) {
	p := newValidPlan(t)
	name := "Renamed"
	relaxation := -3

	err := p.ApplyUpdate(Update{Name: &name, RelaxationDays: &relaxation}, "editor@goldvault.test")

	assert.ErrorIs(t, err, ErrInvalidRelaxation)
	assert.Equal(t, "Gold Saver", p.Name())
	assert.Equal(t, 5, p.RelaxationDays())
	assert.Empty(t, p.Metadata().LastUpdatedBy)
}

func TestApplyUpdate_RejectsUnknownStatus(t *testing.T) {
	p := newValidPlan(t)
	s := Status("DELETED")
	assert.ErrorIs(t, p.ApplyUpdate(Update{Status: &s}, "x@y.z"), ErrInvalidStatus)
	assert.True(t, p.IsActive())
}
