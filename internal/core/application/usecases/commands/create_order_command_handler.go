package commands

import (
	"context"
	"errors"
	"time"

	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/services"
	"fixit/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// Business rules:
//   - Only customers create orders
//   - The customer is the caller
//   - The address must be one of the caller's own addresses; any other
//     address is reported like a missing one
//   - The order starts as Pending
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the order creation command.
// Uses transaction to ensure order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.CreateOrder}); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), actor.ID(), cmd.AddressID(), cmd.Details(), time.Now())
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

	_, err = loadOwnAddress(ctx, h.policy, uow.AddressRepository(), actor, services.ReadAddress, o.AddressID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause("address", err)
		}
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
