package ratingrepo

import (
	"context"
	"errors"

	"fixit/internal/adapters/out/postgres/pgutil"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/rating"
	"fixit/internal/core/domain/services"
	"fixit/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{db: db, tracker: tracker}
}

func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRatingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&RatingDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rating", id.String())
	}
	return nil
}

func (r *GormRatingRepository) GetVisible(
	ctx context.Context,
	id kernel.UUID,
	visibility services.Visibility,
) (*rating.Rating, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RatingDTO
	q := scope(r.db.WithContext(ctx), visibility)
	if err := q.First(&dto, "ratings.id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rating", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns the visible ratings, oldest first.
func (r *GormRatingRepository) List(ctx context.Context, visibility services.Visibility) ([]*rating.Rating, error) {
	var dtos []RatingDTO
	q := scope(r.db.WithContext(ctx).Model(&RatingDTO{}), visibility)
	if err := q.Order("ratings.created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	ratings := make([]*rating.Rating, 0, len(dtos))
	for _, dto := range dtos {
		rt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}

	return ratings, nil
}

// scope keeps the union in a single predicate so a rating the caller both
// wrote and received comes back once.
func scope(q *gorm.DB, visibility services.Visibility) *gorm.DB {
	switch visibility.Kind {
	case services.VisibleToAll:
		return q
	case services.VisibleToOwner:
		return q.Where("ratings.user_id = ?", visibility.UserID.Bytes())
	case services.VisibleToOrderCustomer:
		return q.Where(onOwnOrder, visibility.UserID.Bytes())
	case services.VisibleToOrderCustomerOrAuthor:
		id := visibility.UserID.Bytes()
		return q.Where("(ratings.user_id = ? OR "+onOwnOrder+")", id, id)
	default:
		return pgutil.Nothing(q)
	}
}

const onOwnOrder = "EXISTS (SELECT 1 FROM orders WHERE orders.id = ratings.order_id AND orders.customer_id = ?)"
