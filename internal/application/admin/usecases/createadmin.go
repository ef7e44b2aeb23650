package usecases

import (
	"context"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/admin/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

var deniedMessages = map[admin.Role]string{
	admin.RoleDeptAdmin: "Access Denied. You dont have permission to create Department Admins",
	admin.RoleAdmin:     "Access Denied. You dont have permission to create Admins",
}

type CreateAdminCommand struct {
	Actor     *admin.Admin
	Role      admin.Role
	Profile   admin.Profile
	Password  string
	UserRoles []string
}

// CreateAdminUseCase creates department admins (by super admins) and admins
// (by department admins).
type CreateAdminUseCase struct {
	registrar
}

func NewCreateAdminUseCase(adminRepo admin.Repository, hasher admin.PasswordHasher, logger logger.Interface) *CreateAdminUseCase {
	return &CreateAdminUseCase{
		registrar: registrar{adminRepo: adminRepo, hasher: hasher, logger: logger},
	}
}

func (uc *CreateAdminUseCase) Execute(ctx context.Context, cmd CreateAdminCommand) (*dto.AdminDTO, error) {
	denied, ok := deniedMessages[cmd.Role]
	if !ok {
		return nil, errors.NewValidationError("Invalid admin role")
	}
	if cmd.Actor == nil || !cmd.Actor.CanCreate(cmd.Role) {
		actorID := ""
		if cmd.Actor != nil {
			actorID = cmd.Actor.ID()
		}
		uc.logger.Warnw("admin creation denied", "actor_id", actorID, "role", cmd.Role)
		return nil, errors.NewForbiddenError(denied)
	}

	a, err := uc.register(ctx, cmd.Profile, cmd.Password, cmd.Role, cmd.UserRoles, cmd.Actor.ID())
	if err != nil {
		return nil, err
	}
	return dto.ToAdminDTO(a), nil
}
