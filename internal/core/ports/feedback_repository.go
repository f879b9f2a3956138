package ports

import (
	"context"

	"fixit/internal/core/domain/model/complaint"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/rating"
	"fixit/internal/core/domain/services"
)

type ComplaintRepository interface {
	Add(ctx context.Context, aggregate *complaint.Complaint) error
	Delete(ctx context.Context, id kernel.UUID) error
	GetVisible(ctx context.Context, id kernel.UUID, visibility services.Visibility) (*complaint.Complaint, error)
	List(ctx context.Context, visibility services.Visibility) ([]*complaint.Complaint, error)
}

type RatingRepository interface {
	Add(ctx context.Context, aggregate *rating.Rating) error
	Delete(ctx context.Context, id kernel.UUID) error
	GetVisible(ctx context.Context, id kernel.UUID, visibility services.Visibility) (*rating.Rating, error)
	// List returns the visible ratings once each, even when a rating matches
	// both the order-customer and the author clause.
	List(ctx context.Context, visibility services.Visibility) ([]*rating.Rating, error)
}
