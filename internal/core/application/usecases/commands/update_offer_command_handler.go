package commands

import (
	"context"

	"fixit/internal/core/domain/model/offer"
	"fixit/internal/core/domain/services"
)

// UpdateOfferCommandHandler changes an offer the caller can see: a worker
// edits their own offers, a customer answers offers on their orders.
// Accepting an offer does not change the order.
type UpdateOfferCommandHandler struct {
	uowFactory OfferUoWFactory
	policy     services.AccessPolicy
}

func NewUpdateOfferCommandHandler(uowFactory OfferUoWFactory) UpdateOfferCommandHandler {
	return UpdateOfferCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *UpdateOfferCommandHandler) Handle(ctx context.Context, cmd UpdateOfferCommand) (*offer.Offer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.UpdateOffer}); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OfferRepository()
	o, err := repo.GetVisible(ctx, cmd.OfferID(), services.OfferVisibility(actor))
	if err != nil {
		return nil, err
	}

	if err = o.Apply(cmd.Patch()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
