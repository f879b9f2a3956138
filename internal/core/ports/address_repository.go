package ports

import (
	"context"

	"fixit/internal/core/domain/model/address"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/services"
)

type CityRepository interface {
	Add(ctx context.Context, city *address.City) error
	Get(ctx context.Context, id kernel.UUID) (*address.City, error)
	// List returns all cities ordered by name.
	List(ctx context.Context) ([]*address.City, error)
}

type AddressRepository interface {
	Add(ctx context.Context, aggregate *address.Address) error
	Update(ctx context.Context, aggregate *address.Address) error
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an address regardless of owner. Callers mask foreign
	// addresses through the access policy.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)

	List(ctx context.Context, visibility services.Visibility) ([]*address.Address, error)
}
