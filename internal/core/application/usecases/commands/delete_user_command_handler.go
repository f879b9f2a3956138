package commands

import (
	"context"
	"time"

	"fixit/internal/core/domain/services"
)

// DeleteUserCommandHandler marks users deleted. Rows are never removed, so
// the user's orders, offers, complaints and ratings stay intact.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.AccessRequest{Action: services.DeleteUser}); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	u, err := loadUser(ctx, repo, cmd.UserID(), cmd.IncludeDeleted())
	if err != nil {
		return err
	}

	u.SoftDelete(time.Now())

	if err = repo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
