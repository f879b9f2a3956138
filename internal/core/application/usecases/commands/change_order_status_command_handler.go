package commands

import (
	"context"

	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler moves an order to a new status.
//
// It repeats the role and ownership checks of the generic update and runs the
// same transition check, so neither entry point can be used to skip the
// rules of the other. A rejected transition leaves the stored status as it was.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.ChangeOrderStatus}); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := loadChangeableOrder(ctx, h.policy, repo, actor, services.ChangeOrderStatus, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Status()); err != nil {
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
