package queries

import (
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New("GetUserQuery must be created via NewGetUserQuery constructor")

type GetUserQuery struct {
	actor          user.Actor
	userID         kernel.UUID
	includeDeleted bool

	guard guard.ConstructorGuard
}

func NewGetUserQuery(actor user.Actor, userID kernel.UUID, includeDeleted bool) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		actor:          actor,
		userID:         userID,
		includeDeleted: includeDeleted,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) Actor() user.Actor {
	return q.actor
}

func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}

func (q GetUserQuery) IncludeDeleted() bool {
	return q.includeDeleted
}
