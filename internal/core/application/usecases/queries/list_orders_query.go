package queries

import (
	"errors"

	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders visible to the caller, narrowed by filter.
// ordering is the raw client value, e.g. "-budget,status"; without a usable
// field the newest orders come first.
type ListOrdersQuery struct {
	actor  user.Actor
	filter ports.OrderFilter

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor user.Actor, filter ports.OrderFilter, ordering string) ListOrdersQuery {
	filter.Ordering = ParseOrdering(ordering, orderOrderingFields, defaultOrderOrdering)
	return ListOrdersQuery{actor: actor, filter: filter, guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() user.Actor {
	return q.actor
}

func (q ListOrdersQuery) Filter() ports.OrderFilter {
	return q.filter
}
