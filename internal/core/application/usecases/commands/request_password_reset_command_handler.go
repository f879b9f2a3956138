package commands

import (
	"context"
	"strings"

	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/errs"
)

// RequestPasswordResetCommandHandler sends a reset link to an active account.
//
// Business rules:
//   - Unknown and deleted accounts are reported as not found
//   - The link is {frontendURL}/reset-password/{token}/ and the token is single use
type RequestPasswordResetCommandHandler struct {
	uowFactory  UserUoWFactory
	tokens      ports.ResetTokenStore
	mailer      ports.Mailer
	frontendURL string
}

func NewRequestPasswordResetCommandHandler(
	uowFactory UserUoWFactory,
	tokens ports.ResetTokenStore,
	mailer ports.Mailer,
	frontendURL string,
) RequestPasswordResetCommandHandler {
	return RequestPasswordResetCommandHandler{
		uowFactory:  uowFactory,
		tokens:      tokens,
		mailer:      mailer,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

func (h *RequestPasswordResetCommandHandler) Handle(ctx context.Context, cmd RequestPasswordResetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	email, err := user.NormalizeEmail(cmd.Email())
	if err != nil {
		return errs.NewObjectNotFoundErrorWithCause("user", cmd.Email(), err)
	}

	u, err := h.uowFactory.Create().UserRepository().GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u.IsDeleted() {
		return errs.NewObjectNotFoundError("user", email)
	}

	token, err := h.tokens.Issue(ctx, u.ID())
	if err != nil {
		return err
	}

	return h.mailer.SendPasswordReset(ctx, u.Email(), h.resetLink(token))
}

func (h *RequestPasswordResetCommandHandler) resetLink(token string) string {
	return h.frontendURL + "/reset-password/" + token + "/"
}
