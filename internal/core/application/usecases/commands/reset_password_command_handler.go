package commands

import (
	"context"
	"errors"

	"fixit/internal/core/ports"
	"fixit/internal/pkg/errs"
)

// ResetPasswordCommandHandler sets a new password through a reset token.
// The token is used up only when the new password is accepted.
type ResetPasswordCommandHandler struct {
	uowFactory UserUoWFactory
	tokens     ports.ResetTokenStore
	hasher     ports.PasswordHasher
}

func NewResetPasswordCommandHandler(
	uowFactory UserUoWFactory,
	tokens ports.ResetTokenStore,
	hasher ports.PasswordHasher,
) ResetPasswordCommandHandler {
	return ResetPasswordCommandHandler{uowFactory: uowFactory, tokens: tokens, hasher: hasher}
}

func (h *ResetPasswordCommandHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	userID, err := h.tokens.Lookup(ctx, cmd.Token())
	if err != nil {
		return invalidResetLink(err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	u, err := repo.Get(ctx, userID)
	if err != nil {
		return invalidResetLink(err)
	}
	if u.IsDeleted() {
		return ErrResetLinkIsInvalid
	}

	if cmd.NewPassword() == "" {
		return errs.NewValueIsRequiredError("new_password")
	}

	hash, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}
	if err = u.ChangePassword(hash); err != nil {
		return err
	}

	if _, err = h.tokens.Consume(ctx, cmd.Token()); err != nil {
		return invalidResetLink(err)
	}

	if err = repo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func invalidResetLink(err error) error {
	if errors.Is(err, ports.ErrInvalidResetToken) || errors.Is(err, errs.ErrObjectNotFound) {
		return ErrResetLinkIsInvalid
	}
	return err
}
