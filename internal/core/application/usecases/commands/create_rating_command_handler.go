package commands

import (
	"context"
	"time"

	"fixit/internal/core/domain/model/rating"
	"fixit/internal/core/domain/services"
)

// CreateRatingCommandHandler handles the business logic for rating creation.
//
// Business rules:
//   - The author is the caller
//   - The order must exist and be Completed at the time of writing
type CreateRatingCommandHandler struct {
	uowFactory RatingUoWFactory
	policy     services.AccessPolicy
}

func NewCreateRatingCommandHandler(uowFactory RatingUoWFactory) CreateRatingCommandHandler {
	return CreateRatingCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *CreateRatingCommandHandler) Handle(ctx context.Context, cmd CreateRatingCommand) (*rating.Rating, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.CreateRating}); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, asInvalidReference("order", err)
	}

	r, err := rating.NewRating(cmd.RatingID(), cmd.Rate(), cmd.Note(), o.ID(), o.Status(), actor.ID(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.RatingRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
