package commands

import (
	"context"
	"time"

	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/errs"
)

// CreateUserCommandHandler registers accounts.
// Admin accounts cannot be created here; technical support accounts need an Admin caller.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	policy     services.AccessPolicy
}

func NewCreateUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle checks the role gate, hashes the password and stores the user.
// A taken email or phone comes back from the repository as *errs.ConflictError.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.AccessRequest{
		Action:        services.CreateUser,
		RequestedRole: cmd.Role(),
	}); err != nil {
		return nil, err
	}

	if cmd.Password() == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Email(), cmd.Profile(), cmd.Role(), hash, time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
