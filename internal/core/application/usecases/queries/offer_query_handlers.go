package queries

import (
	"context"
	"errors"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/offer"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/guard"
)

var ErrGetOfferQueryIsNotConstructed = errors.New("GetOfferQuery must be created via NewGetOfferQuery constructor")

type GetOfferQuery struct {
	actor   user.Actor
	offerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOfferQuery(actor user.Actor, offerID kernel.UUID) (GetOfferQuery, error) {
	if err := offerID.Validate(); err != nil {
		return GetOfferQuery{}, err
	}
	return GetOfferQuery{actor: actor, offerID: offerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOfferQuery) Validate() error {
	return q.guard.Validate(ErrGetOfferQueryIsNotConstructed)
}

// OfferQueryHandler reads offers: a worker sees their own, anybody else the
// offers on orders they placed.
type OfferQueryHandler struct {
	repo   ports.OfferRepository
	policy services.AccessPolicy
}

func NewOfferQueryHandler(repo ports.OfferRepository) OfferQueryHandler {
	return OfferQueryHandler{repo: repo, policy: services.NewAccessPolicy()}
}

func (h OfferQueryHandler) List(ctx context.Context, query ListOffersQuery) ([]*offer.Offer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	actor := query.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.ListOffers}); err != nil {
		return nil, err
	}
	return h.repo.List(ctx, services.OfferVisibility(actor), query.Filter())
}

func (h OfferQueryHandler) Get(ctx context.Context, query GetOfferQuery) (*offer.Offer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.AccessRequest{Action: services.ReadOffer}); err != nil {
		return nil, err
	}
	return h.repo.GetVisible(ctx, query.offerID, services.OfferVisibility(query.actor))
}
