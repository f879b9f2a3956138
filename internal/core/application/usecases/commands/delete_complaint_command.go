package commands

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrDeleteComplaintCommandIsNotConstructed = errors.New(
	"DeleteComplaintCommand must be created via NewDeleteComplaintCommand constructor",
)

type DeleteComplaintCommand struct { //nolint:recvcheck //using for validation
	actor       user.Actor
	complaintID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteComplaintCommand(actor user.Actor, complaintID kernel.UUID) (DeleteComplaintCommand, error) {
	if err := complaintID.Validate(); err != nil {
		return DeleteComplaintCommand{}, err
	}

	return DeleteComplaintCommand{actor: actor, complaintID: complaintID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteComplaintCommand) Validate() error {
	return c.guard.Validate(ErrDeleteComplaintCommandIsNotConstructed)
}

func (c DeleteComplaintCommand) Actor() user.Actor {
	return c.actor
}

func (c DeleteComplaintCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}
