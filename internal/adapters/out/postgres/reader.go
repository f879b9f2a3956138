package postgres

import (
	"fixit/internal/adapters/out/postgres/addressrepo"
	"fixit/internal/adapters/out/postgres/complaintrepo"
	"fixit/internal/adapters/out/postgres/offerrepo"
	"fixit/internal/adapters/out/postgres/orderrepo"
	"fixit/internal/adapters/out/postgres/ratingrepo"
	"fixit/internal/adapters/out/postgres/userrepo"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/ports"

	"gorm.io/gorm"
)

// Reader hands out repositories bound to the connection pool for the query
// side. Nothing read through them is tracked.
type Reader struct {
	db *gorm.DB
}

func NewReader(db *gorm.DB) *Reader {
	return &Reader{db: db}
}

func (r *Reader) Users() ports.UserRepository {
	return userrepo.NewGormUserRepository(r.db, untracked{})
}

func (r *Reader) Cities() ports.CityRepository {
	return addressrepo.NewGormCityRepository(r.db, untracked{})
}

func (r *Reader) Addresses() ports.AddressRepository {
	return addressrepo.NewGormAddressRepository(r.db, untracked{})
}

func (r *Reader) Orders() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(r.db, untracked{})
}

func (r *Reader) Offers() ports.OfferRepository {
	return offerrepo.NewGormOfferRepository(r.db, untracked{})
}

func (r *Reader) Complaints() ports.ComplaintRepository {
	return complaintrepo.NewGormComplaintRepository(r.db, untracked{})
}

func (r *Reader) Ratings() ports.RatingRepository {
	return ratingrepo.NewGormRatingRepository(r.db, untracked{})
}

type untracked struct{}

func (untracked) TrackAggregate(kernel.UUID, any) {}
