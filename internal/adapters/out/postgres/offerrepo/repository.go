package offerrepo

import (
	"context"
	"errors"

	"fixit/internal/adapters/out/postgres/pgutil"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/offer"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/errs"

	"gorm.io/gorm"
)

var orderColumns = map[string]string{
	"price":          "offers.price",
	"expected_date":  "offers.expected_date",
	"last_time_date": "offers.last_time_date",
	"created_at":     "offers.created_at",
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
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

// Update rewrites the negotiable columns; the order and worker stay as created.
func (r *GormOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OfferDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "is_accept", "price", "company_paid", "notes", "last_time_date", "expected_date").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("offer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOfferRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&OfferDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("offer", id.String())
	}
	return nil
}

func (r *GormOfferRepository) GetVisible(
	ctx context.Context,
	id kernel.UUID,
	visibility services.Visibility,
) (*offer.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	q := scope(r.base(ctx), visibility)

	var dto OfferDTO
	if err := q.First(&dto, "offers.id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOfferRepository) List(
	ctx context.Context,
	visibility services.Visibility,
	filter ports.OfferFilter,
) ([]*offer.Offer, error) {
	q := scope(r.base(ctx), visibility).
		Joins("JOIN users ON users.id = offers.worker_id")

	q = applyFilter(q, filter)
	q = pgutil.Search(q, filter.Search,
		"offers.notes", "orders.notes", "users.email", "users.first_name", "users.last_name")
	q = pgutil.Order(q, filter.Ordering, orderColumns)

	var dtos []OfferDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}

	offers := make([]*offer.Offer, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, nil
}

// base selects offers joined to their order, one row per offer.
func (r *GormOfferRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&OfferDTO{}).
		Select("offers.*").
		Joins("JOIN orders ON orders.id = offers.order_id")
}

func scope(q *gorm.DB, visibility services.Visibility) *gorm.DB {
	switch visibility.Kind {
	case services.VisibleToAll:
		return q
	case services.VisibleToOwner:
		return q.Where("offers.worker_id = ?", visibility.UserID.Bytes())
	case services.VisibleToOrderCustomer:
		return q.Where("orders.customer_id = ?", visibility.UserID.Bytes())
	case services.VisibleToNobody,
		services.VisibleToOfferingWorker,
		services.VisibleToOrderCustomerOrAuthor:
		return pgutil.Nothing(q)
	}
	return pgutil.Nothing(q)
}

func applyFilter(q *gorm.DB, f ports.OfferFilter) *gorm.DB {
	if len(f.Statuses) > 0 {
		codes := make([]int, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			codes = append(codes, int(s))
		}
		q = q.Where("offers.status IN ?", codes)
	}
	if f.IsAccept != nil {
		q = q.Where("offers.is_accept = ?", *f.IsAccept)
	}
	if f.OrderID != nil {
		q = q.Where("offers.order_id = ?", f.OrderID.Bytes())
	}
	if f.WorkerID != nil {
		q = q.Where("offers.worker_id = ?", f.WorkerID.Bytes())
	}
	if f.PriceMin != nil {
		q = q.Where("offers.price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("offers.price <= ?", *f.PriceMax)
	}
	if f.WorkerEmail != "" {
		q = q.Where("users.email ILIKE ?", pgutil.Contains(f.WorkerEmail))
	}
	if f.OrderStatus != nil {
		q = q.Where("orders.status = ?", int(*f.OrderStatus))
	}
	return q
}
