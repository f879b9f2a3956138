package orderrepo

import (
	"context"
	"errors"

	"fixit/internal/adapters/out/postgres/pgutil"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/errs"

	"gorm.io/gorm"
)

var orderColumns = map[string]string{
	"created_date": "orders.created_date",
	"budget":       "orders.budget",
	"status":       "orders.status",
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database. The customer and created
// date are never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "notes", "photo", "short_video", "budget", "address_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the order; offers and ratings on it cascade.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.first(ctx, id, r.db.WithContext(ctx))
}

// GetVisible retrieves an order by ID within the visibility set.
func (r *GormOrderRepository) GetVisible(
	ctx context.Context,
	id kernel.UUID,
	visibility services.Visibility,
) (*order.Order, error) {
	return r.first(ctx, id, scope(r.db.WithContext(ctx), visibility))
}

func (r *GormOrderRepository) first(_ context.Context, id kernel.UUID, q *gorm.DB) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := q.First(&dto, "orders.id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List retrieves the visible orders matching filter.
func (r *GormOrderRepository) List(
	ctx context.Context,
	visibility services.Visibility,
	filter ports.OrderFilter,
) ([]*order.Order, error) {
	q := scope(r.db.WithContext(ctx).Model(&OrderDTO{}), visibility).
		Select("orders.*").
		Joins("JOIN users ON users.id = orders.customer_id").
		Joins("JOIN addresses ON addresses.id = orders.address_id").
		Joins("JOIN cities ON cities.id = addresses.city_id")

	q = applyFilter(q, filter)
	q = pgutil.Search(q, filter.Search,
		"orders.notes", "addresses.address", "cities.name",
		"users.email", "users.first_name", "users.last_name")
	q = pgutil.Order(q, filter.Ordering, orderColumns)

	var dtos []OrderDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// scope restricts q to the orders in the visibility set. The offering worker
// case uses EXISTS so an order with several offers is still one row.
func scope(q *gorm.DB, visibility services.Visibility) *gorm.DB {
	switch visibility.Kind {
	case services.VisibleToAll:
		return q
	case services.VisibleToOwner:
		return q.Where("orders.customer_id = ?", visibility.UserID.Bytes())
	case services.VisibleToOfferingWorker:
		return q.Where(
			"EXISTS (SELECT 1 FROM offers WHERE offers.order_id = orders.id AND offers.worker_id = ?)",
			visibility.UserID.Bytes(),
		)
	case services.VisibleToNobody,
		services.VisibleToOrderCustomer,
		services.VisibleToOrderCustomerOrAuthor:
		return pgutil.Nothing(q)
	}
	return pgutil.Nothing(q)
}

func applyFilter(q *gorm.DB, f ports.OrderFilter) *gorm.DB {
	if len(f.Statuses) > 0 {
		codes := make([]int, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			codes = append(codes, int(s))
		}
		q = q.Where("orders.status IN ?", codes)
	}
	if f.BudgetMin != nil {
		q = q.Where("orders.budget >= ?", *f.BudgetMin)
	}
	if f.BudgetMax != nil {
		q = q.Where("orders.budget <= ?", *f.BudgetMax)
	}
	if f.CustomerID != nil {
		q = q.Where("orders.customer_id = ?", f.CustomerID.Bytes())
	}
	if f.CustomerEmail != "" {
		q = q.Where("users.email ILIKE ?", pgutil.Contains(f.CustomerEmail))
	}
	if f.CityID != nil {
		q = q.Where("addresses.city_id = ?", f.CityID.Bytes())
	}
	if f.AddressID != nil {
		q = q.Where("orders.address_id = ?", f.AddressID.Bytes())
	}
	if f.CreatedAfter != nil {
		q = q.Where("orders.created_date >= ?", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		q = q.Where("orders.created_date <= ?", *f.CreatedBefore)
	}
	return q
}
