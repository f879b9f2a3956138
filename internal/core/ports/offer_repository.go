package ports

import (
	"context"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/offer"
	"fixit/internal/core/domain/services"
)

type OfferRepository interface {
	Add(ctx context.Context, aggregate *offer.Offer) error
	Update(ctx context.Context, aggregate *offer.Offer) error
	Delete(ctx context.Context, id kernel.UUID) error
	GetVisible(ctx context.Context, id kernel.UUID, visibility services.Visibility) (*offer.Offer, error)
	List(ctx context.Context, visibility services.Visibility, filter OfferFilter) ([]*offer.Offer, error)
}
