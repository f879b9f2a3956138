package commands

import (
	"errors"
	"time"

	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/errs"
	"fixit/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New("LogoutCommand must be created via NewLogoutCommand constructor")

// LogoutCommand revokes the access token the request was made with.
type LogoutCommand struct { //nolint:recvcheck //using for validation
	actor     user.Actor
	tokenID   string
	expiresAt time.Time

	guard guard.ConstructorGuard
}

func NewLogoutCommand(actor user.Actor, tokenID string, expiresAt time.Time) (LogoutCommand, error) {
	if actor.IsAuthenticated() && tokenID == "" {
		return LogoutCommand{}, errs.NewValueIsRequiredError("token")
	}

	return LogoutCommand{actor: actor, tokenID: tokenID, expiresAt: expiresAt, guard: guard.NewConstructorGuard()}, nil
}

func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

func (c LogoutCommand) Actor() user.Actor {
	return c.actor
}

func (c LogoutCommand) TokenID() string {
	return c.tokenID
}

func (c LogoutCommand) ExpiresAt() time.Time {
	return c.expiresAt
}
