package commands

import (
	"context"
	"errors"

	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/errs"
)

// LoginResult is a freshly issued access token and the account it belongs to.
type LoginResult struct {
	Token ports.AccessToken
	User  *user.User
}

// LoginCommandHandler exchanges credentials for an access token.
// Unknown email, wrong password and a deleted account all yield
// ErrInvalidCredentials.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory, hasher: hasher, issuer: issuer}
}

func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	email, err := user.NormalizeEmail(cmd.Email())
	if err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	u, err := h.uowFactory.Create().UserRepository().GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.Password()); err != nil {
		if errors.Is(err, ports.ErrPasswordMismatch) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if u.IsDeleted() {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := h.issuer.Issue(u)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, User: u}, nil
}
