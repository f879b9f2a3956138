package commands

import (
	"context"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
)

// UpdateOrderCommandHandler applies the generic order update.
//
// Checks, in order, all before the write:
//  1. caller is a Customer or an Admin
//  2. the order is visible to the caller (otherwise not found)
//  3. a Customer owns the order
//  4. a Customer only sent allow-listed field names
//  5. a status in the patch passes the transition check
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.UpdateOrder}); err != nil {
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
	o, err := loadChangeableOrder(ctx, h.policy, repo, actor, services.UpdateOrder, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if actor.Is(user.Customer) {
		if err = order.CheckCustomerFields(cmd.Fields()); err != nil {
			return nil, err
		}
	}

	patch := cmd.Patch()
	if patch.AddressID != nil {
		if _, err = uow.AddressRepository().Get(ctx, *patch.AddressID); err != nil {
			return nil, asInvalidReference("address", err)
		}
	}

	if err = o.Apply(patch); err != nil {
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

// loadChangeableOrder loads an order through the caller's visibility and
// checks that the caller may change it.
func loadChangeableOrder(
	ctx context.Context,
	policy services.AccessPolicy,
	repo ports.OrderRepository,
	actor user.Actor,
	action services.Action,
	id kernel.UUID,
) (*order.Order, error) {
	o, err := repo.GetVisible(ctx, id, services.OrderVisibility(actor))
	if err != nil {
		return nil, err
	}

	owner := o.CustomerID()
	if err = policy.Authorize(actor, services.AccessRequest{Action: action, Owner: &owner}); err != nil {
		return nil, err
	}

	return o, nil
}
