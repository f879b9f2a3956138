package commands

import (
	"context"
	"time"

	"fixit/internal/core/domain/model/offer"
	"fixit/internal/core/domain/services"
)

// CreateOfferCommandHandler handles the business logic for offer creation.
//
// Business rules:
//   - Only workers create offers
//   - The worker is the caller
//   - The order must exist; it is not narrowed by the caller's visibility,
//     since a worker sees an order only after offering on it
//   - The offer starts as Pending and not accepted
type CreateOfferCommandHandler struct {
	uowFactory OfferUoWFactory
	policy     services.AccessPolicy
}

func NewCreateOfferCommandHandler(uowFactory OfferUoWFactory) CreateOfferCommandHandler {
	return CreateOfferCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *CreateOfferCommandHandler) Handle(ctx context.Context, cmd CreateOfferCommand) (*offer.Offer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.CreateOffer}); err != nil {
		return nil, err
	}

	o, err := offer.NewOffer(cmd.OfferID(), cmd.OrderID(), actor.ID(), cmd.Terms(), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.OrderRepository().Get(ctx, o.OrderID()); err != nil {
		return nil, asInvalidReference("order", err)
	}

	if err = uow.OfferRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
