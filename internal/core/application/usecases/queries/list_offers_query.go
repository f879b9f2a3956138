package queries

import (
	"errors"

	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/guard"
)

var ErrListOffersQueryIsNotConstructed = errors.New(
	"ListOffersQuery must be created via NewListOffersQuery constructor",
)

type ListOffersQuery struct {
	actor  user.Actor
	filter ports.OfferFilter

	guard guard.ConstructorGuard
}

// NewListOffersQuery defaults to the offers with the latest deadline first.
func NewListOffersQuery(actor user.Actor, filter ports.OfferFilter, ordering string) ListOffersQuery {
	filter.Ordering = ParseOrdering(ordering, offerOrderingFields, defaultOfferOrdering)
	return ListOffersQuery{actor: actor, filter: filter, guard: guard.NewConstructorGuard()}
}

func (q ListOffersQuery) Validate() error {
	return q.guard.Validate(ErrListOffersQueryIsNotConstructed)
}

func (q ListOffersQuery) Actor() user.Actor {
	return q.actor
}

func (q ListOffersQuery) Filter() ports.OfferFilter {
	return q.filter
}
