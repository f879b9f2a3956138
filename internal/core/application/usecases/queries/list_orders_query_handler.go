package queries

import (
	"context"

	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
)

// ListOrdersQueryHandler lists orders by role:
//   - anonymous callers get an empty list
//   - customers get their own orders
//   - workers get the orders they offered on, each once
//   - admins and technical support get every order
type ListOrdersQueryHandler struct {
	repo   ports.OrderRepository
	policy services.AccessPolicy
}

func NewListOrdersQueryHandler(repo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{repo: repo, policy: services.NewAccessPolicy()}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.ListOrders}); err != nil {
		return nil, err
	}

	visibility := services.OrderVisibility(actor)
	if visibility.Kind == services.VisibleToNobody {
		return []*order.Order{}, nil
	}

	return h.repo.List(ctx, visibility, query.Filter())
}
