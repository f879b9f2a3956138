package commands

import (
	"errors"

	"fixit/internal/core/domain/model/complaint"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrCreateComplaintCommandIsNotConstructed = errors.New(
	"CreateComplaintCommand must be created via NewCreateComplaintCommand constructor",
)

type CreateComplaintCommand struct { //nolint:recvcheck //using for validation
	actor       user.Actor
	complaintID kernel.UUID
	kind        complaint.Type
	message     string

	guard guard.ConstructorGuard
}

func NewCreateComplaintCommand(
	actor user.Actor,
	complaintID kernel.UUID,
	kind complaint.Type,
	message string,
) (CreateComplaintCommand, error) {
	if err := complaintID.Validate(); err != nil {
		return CreateComplaintCommand{}, err
	}

	return CreateComplaintCommand{
		actor:       actor,
		complaintID: complaintID,
		kind:        kind,
		message:     message,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateComplaintCommand) Validate() error {
	return c.guard.Validate(ErrCreateComplaintCommandIsNotConstructed)
}

func (c CreateComplaintCommand) Actor() user.Actor {
	return c.actor
}

func (c CreateComplaintCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

func (c CreateComplaintCommand) Type() complaint.Type {
	return c.kind
}

func (c CreateComplaintCommand) Message() string {
	return c.message
}
