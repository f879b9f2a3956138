package queries

import (
	"context"

	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
)

// GetOrderQueryHandler reads one order. Unlike the listing it needs an
// authenticated caller; an order outside the caller's visibility is not found.
type GetOrderQueryHandler struct {
	repo   ports.OrderRepository
	policy services.AccessPolicy
}

func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo, policy: services.NewAccessPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if err := h.policy.Authorize(actor, services.AccessRequest{Action: services.ReadOrder}); err != nil {
		return nil, err
	}

	return h.repo.GetVisible(ctx, query.OrderID(), services.OrderVisibility(actor))
}
