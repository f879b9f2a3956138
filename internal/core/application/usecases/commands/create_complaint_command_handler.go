package commands

import (
	"context"
	"time"

	"fixit/internal/core/domain/model/complaint"
	"fixit/internal/core/domain/services"
)

// CreateComplaintCommandHandler files a complaint authored by the caller.
type CreateComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
	policy     services.AccessPolicy
}

func NewCreateComplaintCommandHandler(uowFactory ComplaintUoWFactory) CreateComplaintCommandHandler {
	return CreateComplaintCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *CreateComplaintCommandHandler) Handle(ctx context.Context, cmd CreateComplaintCommand) (*complaint.Complaint, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.CreateComplaint}); err != nil {
		return nil, err
	}

	c, err := complaint.NewComplaint(cmd.ComplaintID(), cmd.Type(), cmd.Message(), actor.ID(), time.Now())
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

	if err = uow.ComplaintRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
