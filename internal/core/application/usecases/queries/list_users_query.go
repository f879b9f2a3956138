package queries

import (
	"errors"

	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery lists accounts. Deleted accounts are left out unless
// filter.IncludeDeleted is set.
//
// Example:
//
//	query := NewListUsersQuery(actor, ports.UserFilter{Search: "lee"}, "-date_joined")
//	users, err := handler.Handle(ctx, query)
type ListUsersQuery struct {
	actor  user.Actor
	filter ports.UserFilter

	guard guard.ConstructorGuard
}

func NewListUsersQuery(actor user.Actor, filter ports.UserFilter, ordering string) ListUsersQuery {
	filter.Ordering = ParseOrdering(ordering, userOrderingFields, defaultUserOrdering)
	return ListUsersQuery{actor: actor, filter: filter, guard: guard.NewConstructorGuard()}
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Actor() user.Actor {
	return q.actor
}

func (q ListUsersQuery) Filter() ports.UserFilter {
	return q.filter
}
