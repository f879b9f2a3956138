package commands

import (
	"context"

	"fixit/internal/core/domain/services"
)

type DeleteRatingCommandHandler struct {
	uowFactory RatingUoWFactory
	policy     services.AccessPolicy
}

func NewDeleteRatingCommandHandler(uowFactory RatingUoWFactory) DeleteRatingCommandHandler {
	return DeleteRatingCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *DeleteRatingCommandHandler) Handle(ctx context.Context, cmd DeleteRatingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.DeleteRating}); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RatingRepository()
	r, err := repo.GetVisible(ctx, cmd.RatingID(), services.RatingVisibility(actor))
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, r.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
