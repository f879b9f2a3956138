package addressrepo

import (
	"context"
	"errors"

	"fixit/internal/adapters/out/postgres/pgutil"
	"fixit/internal/core/domain/model/address"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/services"
	"fixit/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCityRepository implements CityRepository using GORM.
type GormCityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCityRepository(db *gorm.DB, tracker aggregateTracker) *GormCityRepository {
	return &GormCityRepository{db: db, tracker: tracker}
}

func (r *GormCityRepository) Add(ctx context.Context, city *address.City) error {
	if err := city.Validate(); err != nil {
		return err
	}

	dto := cityFromDomain(city)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(city.ID(), city)
	return nil
}

func (r *GormCityRepository) Get(ctx context.Context, id kernel.UUID) (*address.City, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("city", id.String())
		}
		return nil, err
	}

	return cityToDomain(dto)
}

func (r *GormCityRepository) List(ctx context.Context) ([]*address.City, error) {
	var dtos []CityDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	cities := make([]*address.City, 0, len(dtos))
	for _, dto := range dtos {
		c, err := cityToDomain(dto)
		if err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}

	return cities, nil
}

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormAddressRepository(db *gorm.DB, tracker aggregateTracker) *GormAddressRepository {
	return &GormAddressRepository{db: db, tracker: tracker}
}

func (r *GormAddressRepository) Add(ctx context.Context, aggregate *address.Address) error {
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

func (r *GormAddressRepository) Update(ctx context.Context, aggregate *address.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AddressDTO{}).
		Where("id = ?", dto.ID).
		Select("address", "gps_position", "city_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the address. Orders placed at it are removed by the foreign key.
func (r *GormAddressRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&AddressDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", id.String())
	}
	return nil
}

func (r *GormAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAddressRepository) List(ctx context.Context, visibility services.Visibility) ([]*address.Address, error) {
	q := r.db.WithContext(ctx).Model(&AddressDTO{})
	switch visibility.Kind {
	case services.VisibleToAll:
	case services.VisibleToOwner:
		q = q.Where("user_id = ?", visibility.UserID.Bytes())
	default:
		q = pgutil.Nothing(q)
	}

	var dtos []AddressDTO
	if err := q.Order("address").Find(&dtos).Error; err != nil {
		return nil, err
	}

	addresses := make([]*address.Address, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}

	return addresses, nil
}
