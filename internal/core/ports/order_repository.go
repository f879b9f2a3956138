package ports

import (
	"context"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/services"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order. Its offers and ratings go with it.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order by id without any visibility restriction.
	// Used when another resource references the order (offers, ratings).
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetVisible retrieves an order only if it belongs to the visibility set;
	// otherwise it returns *errs.ObjectNotFoundError as for a missing row.
	GetVisible(ctx context.Context, id kernel.UUID, visibility services.Visibility) (*order.Order, error)

	// List returns the visible orders narrowed by filter. Each order appears once.
	List(ctx context.Context, visibility services.Visibility, filter OrderFilter) ([]*order.Order, error)
}
