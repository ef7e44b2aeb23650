// Package migration manages the database schema.
package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

// Manager runs the strategy selected for an environment.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose scripts for test and production and gorm
// automigrate everywhere else.
func NewManager(environment string) *Manager {
	var strategy Strategy
	switch strings.ToLower(environment) {
	case constants.EnvTest, constants.EnvProduction:
		strategy = NewGooseStrategy()
	default:
		strategy = NewAutoMigrateStrategy()
	}
	return NewManagerWithStrategy(strategy)
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}
