// Package pgtest starts a throwaway PostgreSQL container for repository
// integration suites and seeds it with valid aggregates.
package pgtest

import (
	"context"
	"fmt"
	"time"

	postgres_adapter "fixit/internal/adapters/out/postgres"
	"fixit/internal/core/domain/model/address"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/offer"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/ports"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Tables lists every table in truncation-safe form.
const Tables = "ratings, complaints, offers, orders, addresses, cities, users"

// Start runs postgres:15-alpine, connects GORM to it and migrates the schema.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return container, nil, err
	}

	if err := postgres_adapter.Migrate(db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every table.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + Tables + " CASCADE").Error
}

// Seed writes fixtures straight to the connection pool.
type Seed struct {
	uow ports.UnitOfWork
	n   int
}

func NewSeed(db *gorm.DB) *Seed {
	return &Seed{uow: postgres_adapter.NewGormUnitOfWorkFactory(db).Create()}
}

func (s *Seed) User(ctx context.Context, role user.Role) (*user.User, error) {
	s.n++
	u, err := user.NewUser(
		kernel.NewUUID(),
		fmt.Sprintf("user%d@example.com", s.n),
		user.Profile{FirstName: fmt.Sprintf("First%d", s.n), LastName: "Tester"},
		role,
		"hash",
		time.Now(),
	)
	if err != nil {
		return nil, err
	}
	return u, s.uow.UserRepository().Add(ctx, u)
}

func (s *Seed) City(ctx context.Context, name string) (*address.City, error) {
	c, err := address.NewCity(kernel.NewUUID(), name)
	if err != nil {
		return nil, err
	}
	return c, s.uow.CityRepository().Add(ctx, c)
}

func (s *Seed) Address(ctx context.Context, owner *user.User, city *address.City, line string) (*address.Address, error) {
	gps, err := kernel.NewGPSPosition(50.45, 30.52)
	if err != nil {
		return nil, err
	}
	a, err := address.NewAddress(kernel.NewUUID(), line, gps, city.ID(), owner.ID())
	if err != nil {
		return nil, err
	}
	return a, s.uow.AddressRepository().Add(ctx, a)
}

func (s *Seed) Order(
	ctx context.Context,
	customer *user.User,
	at *address.Address,
	status order.Status,
	details order.Details,
	created time.Time,
) (*order.Order, error) {
	o, err := order.RestoreOrder(kernel.NewUUID(), customer.ID(), at.ID(), status, details, created)
	if err != nil {
		return nil, err
	}
	return o, s.uow.OrderRepository().Add(ctx, o)
}

func (s *Seed) Offer(ctx context.Context, on *order.Order, worker *user.User, terms offer.Terms) (*offer.Offer, error) {
	o, err := offer.NewOffer(kernel.NewUUID(), on.ID(), worker.ID(), terms, time.Now())
	if err != nil {
		return nil, err
	}
	return o, s.uow.OfferRepository().Add(ctx, o)
}
