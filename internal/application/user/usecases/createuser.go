package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/user/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/notification"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/user"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

const msgEmailExists = "User with this email already exist"

type CreateUserCommand struct {
	Profile      user.Profile
	KYCDocuments user.KYCDocuments
	ActorEmail   string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	queue    notification.Queue
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, queue notification.Queue, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		queue:    queue,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Profile.Email)
	if err != nil {
		uc.logger.Errorw("failed to check user email", "error", err)
		return nil, fmt.Errorf("failed to check user email: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError(msgEmailExists)
	}

	u, err := user.NewUser(cmd.Profile, cmd.KYCDocuments, cmd.ActorEmail)
	if err != nil {
		return nil, errors.NewValidationError("Invalid user details", err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		// Lost a race with a concurrent create of the same email.
		if stderrors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, errors.NewConflictError(msgEmailExists)
		}
		uc.logger.Errorw("failed to create user", "email", utils.MaskEmail(u.Email()), "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := uc.queue.Enqueue(ctx, notification.NewAccountCreated(u.Email(), u.FullName())); err != nil {
		uc.logger.Warnw("failed to enqueue welcome email", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("user created successfully", "user_id", u.ID(), "created_by", cmd.ActorEmail)
	return dto.ToUserDTO(u), nil
}
