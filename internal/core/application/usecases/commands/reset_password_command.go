package commands

import (
	"errors"

	"fixit/internal/pkg/guard"
)

var ErrResetPasswordCommandIsNotConstructed = errors.New(
	"ResetPasswordCommand must be created via NewResetPasswordCommand constructor",
)

// ResetPasswordCommand is deliberately lenient: an empty new password is
// reported only after the token has been checked.
type ResetPasswordCommand struct { //nolint:recvcheck //using for validation
	token       string
	newPassword string

	guard guard.ConstructorGuard
}

func NewResetPasswordCommand(token, newPassword string) ResetPasswordCommand {
	return ResetPasswordCommand{token: token, newPassword: newPassword, guard: guard.NewConstructorGuard()}
}

func (c ResetPasswordCommand) Validate() error {
	return c.guard.Validate(ErrResetPasswordCommandIsNotConstructed)
}

func (c ResetPasswordCommand) Token() string {
	return c.token
}

func (c ResetPasswordCommand) NewPassword() string {
	return c.newPassword
}
