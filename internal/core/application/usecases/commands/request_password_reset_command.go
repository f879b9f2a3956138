package commands

import (
	"errors"

	"fixit/internal/pkg/guard"
)

var ErrRequestPasswordResetCommandIsNotConstructed = errors.New(
	"RequestPasswordResetCommand must be created via NewRequestPasswordResetCommand constructor",
)

type RequestPasswordResetCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

func NewRequestPasswordResetCommand(email string) RequestPasswordResetCommand {
	return RequestPasswordResetCommand{email: email, guard: guard.NewConstructorGuard()}
}

func (c RequestPasswordResetCommand) Validate() error {
	return c.guard.Validate(ErrRequestPasswordResetCommandIsNotConstructed)
}

func (c RequestPasswordResetCommand) Email() string {
	return c.email
}
