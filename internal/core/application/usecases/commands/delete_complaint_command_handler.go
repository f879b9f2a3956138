package commands

import (
	"context"

	"fixit/internal/core/domain/services"
)

// DeleteComplaintCommandHandler removes a complaint visible to the caller:
// their own, or any complaint for an Admin.
type DeleteComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
	policy     services.AccessPolicy
}

func NewDeleteComplaintCommandHandler(uowFactory ComplaintUoWFactory) DeleteComplaintCommandHandler {
	return DeleteComplaintCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *DeleteComplaintCommandHandler) Handle(ctx context.Context, cmd DeleteComplaintCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.DeleteComplaint}); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ComplaintRepository()
	c, err := repo.GetVisible(ctx, cmd.ComplaintID(), services.ComplaintVisibility(actor))
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, c.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
