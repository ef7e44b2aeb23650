package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

const (
	msgEmailExists = "Email already exists"
	msgPhoneExists = "Phone number already exists"
)

// registrar holds the duplicate checks and hashing shared by every admin
// creation flow.
type registrar struct {
	adminRepo admin.Repository
	hasher    admin.PasswordHasher
	logger    logger.Interface
}

func (r registrar) register(
	ctx context.Context,
	profile admin.Profile,
	password string,
	role admin.Role,
	userRoles []string,
	createdBy string,
) (*admin.Admin, error) {
	if password == "" {
		return nil, errors.NewValidationError("Password is required")
	}

	exists, err := r.adminRepo.ExistsByEmail(ctx, profile.Email)
	if err != nil {
		r.logger.Errorw("failed to check admin email", "error", err)
		return nil, fmt.Errorf("failed to check admin email: %w", err)
	}
	if exists {
		r.logger.Warnw("duplicate admin email", "role", role, "email", utils.MaskEmail(profile.Email))
		return nil, errors.NewConflictError(msgEmailExists)
	}

	exists, err = r.adminRepo.ExistsByPhoneNumber(ctx, profile.PhoneNumber)
	if err != nil {
		r.logger.Errorw("failed to check admin phone number", "error", err)
		return nil, fmt.Errorf("failed to check admin phone number: %w", err)
	}
	if exists {
		r.logger.Warnw("duplicate admin phone number", "role", role, "phone_number", utils.MaskPhone(profile.PhoneNumber))
		return nil, errors.NewConflictError(msgPhoneExists)
	}

	hash, err := r.hasher.Hash(password)
	if err != nil {
		r.logger.Errorw("failed to hash admin password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	a, err := admin.NewAdmin(profile, hash, role, userRoles, createdBy)
	if err != nil {
		return nil, errors.NewValidationError("Invalid admin details", err.Error())
	}

	if err := r.adminRepo.Create(ctx, a); err != nil {
		switch {
		case stderrors.Is(err, admin.ErrEmailExists):
			return nil, errors.NewConflictError(msgEmailExists)
		case stderrors.Is(err, admin.ErrPhoneExists):
			return nil, errors.NewConflictError(msgPhoneExists)
		}
		r.logger.Errorw("failed to create admin", "role", role, "error", err)
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	r.logger.Infow("admin created", "admin_id", a.ID(), "role", role, "created_by", createdBy)
	return a, nil
}
