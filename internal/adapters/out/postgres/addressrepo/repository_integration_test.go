package addressrepo_test

import (
	"context"
	"testing"

	"fixit/internal/adapters/out/postgres/addressrepo"
	"fixit/internal/adapters/out/postgres/pgtest"
	"fixit/internal/core/domain/model/address"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/domain/services"
	"fixit/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type AddressRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	cities    *addressrepo.GormCityRepository
	addresses *addressrepo.GormAddressRepository
	seed      *pgtest.Seed
}

func (suite *AddressRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *AddressRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.cities = addressrepo.NewGormCityRepository(suite.db, noopTracker{})
	suite.addresses = addressrepo.NewGormAddressRepository(suite.db, noopTracker{})
	suite.seed = pgtest.NewSeed(suite.db)
}

func (suite *AddressRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AddressRepositoryIntegrationTestSuite) TestCities_ListedByName() {
	ctx := context.Background()
	for _, name := range []string{"Odesa", "Kyiv", "Lviv"} {
		c, err := address.NewCity(kernel.NewUUID(), name)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.cities.Add(ctx, c))
	}

	got, err := suite.cities.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(got, 3)
	suite.Equal([]string{"Kyiv", "Lviv", "Odesa"}, []string{got[0].Name(), got[1].Name(), got[2].Name()})

	_, err = suite.cities.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AddressRepositoryIntegrationTestSuite) TestAddresses_OwnerScopedListAndUpdate() {
	ctx := context.Background()
	ann, err := suite.seed.User(ctx, user.Customer)
	suite.Require().NoError(err)
	bob, err := suite.seed.User(ctx, user.Customer)
	suite.Require().NoError(err)
	city, err := suite.seed.City(ctx, "Kyiv")
	suite.Require().NoError(err)

	mine, err := suite.seed.Address(ctx, ann, city, "Khreshchatyk 1")
	suite.Require().NoError(err)
	_, err = suite.seed.Address(ctx, bob, city, "Khreshchatyk 2")
	suite.Require().NoError(err)

	got, err := suite.addresses.List(ctx, services.AddressVisibility(ann.Actor()))
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal(mine.ID(), got[0].ID())

	none, err := suite.addresses.List(ctx, services.AddressVisibility(user.Anonymous()))
	suite.Require().NoError(err)
	suite.Empty(none)

	gps, err := kernel.ParseGPSPosition("46.48,30.72")
	suite.Require().NoError(err)
	suite.Require().NoError(mine.Change("Deribasivska 5", gps, city.ID()))
	suite.Require().NoError(suite.addresses.Update(ctx, mine))

	reloaded, err := suite.addresses.Get(ctx, mine.ID())
	suite.Require().NoError(err)
	suite.Equal("Deribasivska 5", reloaded.Line())
	suite.Equal(ann.ID(), reloaded.OwnerID())
	equal, err := reloaded.GPS().IsEqual(gps)
	suite.Require().NoError(err)
	suite.True(equal)
}

func (suite *AddressRepositoryIntegrationTestSuite) TestAddresses_DeleteMissing() {
	suite.Require().ErrorIs(suite.addresses.Delete(context.Background(), kernel.NewUUID()), errs.ErrObjectNotFound)
}

func TestAddressRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AddressRepositoryIntegrationTestSuite))
}
