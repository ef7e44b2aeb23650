package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/mappers"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/models"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/db"
	sharedErrors "github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

type AdminRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AdminMapper
	logger logger.Interface
}

func NewAdminRepository(db *gorm.DB, logger logger.Interface) admin.Repository {
	return &AdminRepositoryImpl{
		db:     db,
		mapper: mappers.NewAdminMapper(),
		logger: logger,
	}
}

func (r *AdminRepositoryImpl) Create(ctx context.Context, a *admin.Admin) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			// MySQL names the violated key, SQLite the column.
			if strings.Contains(err.Error(), "phone_number") {
				return admin.ErrPhoneExists
			}
			return admin.ErrEmailExists
		}
		r.logger.Errorw("failed to create admin", "error", err, "admin_id", a.ID())
		return fmt.Errorf("failed to create admin: %w", err)
	}

	r.logger.Infow("admin created", "admin_id", a.ID(), "user_type", a.Role())
	return nil
}

func (r *AdminRepositoryImpl) GetByID(ctx context.Context, id string) (*admin.Admin, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *AdminRepositoryImpl) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("email = ?", admin.NormalizeEmail(email)))
}

func (r *AdminRepositoryImpl) first(query *gorm.DB) (*admin.Admin, error) {
	var model models.AdminModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get admin", "error", err)
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *AdminRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", admin.NormalizeEmail(email))
}

func (r *AdminRepositoryImpl) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	return r.exists(ctx, "phone_number = ?", phoneNumber)
}

func (r *AdminRepositoryImpl) exists(ctx context.Context, cond string, value string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AdminModel{}).
		Where(cond, value).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check admin existence", "error", err)
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}
	return count > 0, nil
}
