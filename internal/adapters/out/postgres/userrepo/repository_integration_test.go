package userrepo_test

import (
	"context"
	"testing"
	"time"

	"fixit/internal/adapters/out/postgres/pgtest"
	"fixit/internal/adapters/out/postgres/userrepo"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = userrepo.NewGormUserRepository(suite.db, noopTracker{})
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_RoundTripsProfile() {
	ctx := context.Background()
	phone := "+380501112233"
	gender := user.Female
	experience := 4
	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	u := suite.newUser("ann@example.com", user.Worker, user.Profile{
		FirstName: "Ann", LastName: "Lee",
		Phone: &phone, Gender: &gender, WorkExperience: &experience, BirthDate: &birth,
	})

	got, err := suite.repository.GetByEmail(ctx, "ann@example.com")
	suite.Require().NoError(err)
	suite.Equal(u.ID(), got.ID())
	suite.Equal(user.Worker, got.Role())
	suite.Equal(phone, *got.Profile().Phone)
	suite.Equal(user.Female, *got.Profile().Gender)
	suite.Equal(4, *got.Profile().WorkExperience)
	suite.Equal("1990-05-17", got.Profile().BirthDate.Format(time.DateOnly))
	suite.False(got.IsDeleted())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmailOrPhone_IsConflict() {
	ctx := context.Background()
	phone := "555"
	suite.newUser("ann@example.com", user.Customer, user.Profile{FirstName: "Ann", LastName: "Lee", Phone: &phone})

	testCases := []struct {
		name  string
		email string
		field string
	}{
		{"email", "ann@example.com", "email"},
		{"phone", "bob@example.com", "phone"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			u, err := user.NewUser(kernel.NewUUID(), tc.email,
				user.Profile{FirstName: "Bob", LastName: "Ray", Phone: &phone}, user.Customer, "hash", time.Now())
			suite.Require().NoError(err)

			err = suite.repository.Add(ctx, u)

			var conflict *errs.ConflictError
			suite.Require().ErrorAs(err, &conflict)
			suite.Equal(tc.field, conflict.ParamName)
		})
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_SoftDeleteAndClearedFields() {
	ctx := context.Background()
	phone := "555"
	u := suite.newUser("ann@example.com", user.Customer, user.Profile{FirstName: "Ann", LastName: "Lee", Phone: &phone})

	suite.Require().NoError(u.UpdateProfile(user.Profile{FirstName: "Anna", LastName: "Lee"}))
	u.SoftDelete(time.Now())
	suite.Require().NoError(suite.repository.Update(ctx, u))

	got, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal("Anna", got.Profile().FirstName)
	suite.Nil(got.Profile().Phone)
	suite.True(got.IsDeleted())
	suite.NotNil(got.DeletedAt())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByEmail(context.Background(), "nobody@example.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestList_FiltersAndOrdering() {
	ctx := context.Background()
	ann := suite.newUser("ann@example.com", user.Customer, user.Profile{FirstName: "Ann", LastName: "Lee"})
	bob := suite.newUser("bob@example.com", user.Worker, user.Profile{FirstName: "Bob", LastName: "Stone"})
	gone := suite.newUser("zed@example.com", user.Customer, user.Profile{FirstName: "Zed", LastName: "Lee"})
	gone.SoftDelete(time.Now())
	suite.Require().NoError(suite.repository.Update(ctx, gone))

	worker := user.Worker
	byEmail := []ports.Ordering{{Field: "email"}}

	testCases := []struct {
		name   string
		filter ports.UserFilter
		want   []kernel.UUID
	}{
		{"deleted hidden by default", ports.UserFilter{}, []kernel.UUID{ann.ID(), bob.ID()}},
		{"deleted on opt-in", ports.UserFilter{IncludeDeleted: true}, []kernel.UUID{ann.ID(), bob.ID(), gone.ID()}},
		{"full name matches last name", ports.UserFilter{FullName: "lee", IncludeDeleted: true}, []kernel.UUID{ann.ID(), gone.ID()}},
		{"role", ports.UserFilter{Role: &worker}, []kernel.UUID{bob.ID()}},
		{"email contains", ports.UserFilter{Email: "BOB"}, []kernel.UUID{bob.ID()}},
		{"search role code", ports.UserFilter{Search: "2"}, []kernel.UUID{bob.ID()}},
		{"search every term", ports.UserFilter{Search: "ann lee"}, []kernel.UUID{ann.ID()}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.filter.Ordering = byEmail
			got, err := suite.repository.List(ctx, tc.filter)
			suite.Require().NoError(err)

			ids := make([]kernel.UUID, 0, len(got))
			for _, u := range got {
				ids = append(ids, u.ID())
			}
			suite.Equal(tc.want, ids)
		})
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestList_DescendingOrdering() {
	ctx := context.Background()
	ann := suite.newUser("ann@example.com", user.Customer, user.Profile{FirstName: "Ann", LastName: "Lee"})
	bob := suite.newUser("bob@example.com", user.Customer, user.Profile{FirstName: "Bob", LastName: "Lee"})

	got, err := suite.repository.List(ctx, ports.UserFilter{
		Ordering: []ports.Ordering{{Field: "first_name", Descending: true}},
	})
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(bob.ID(), got[0].ID())
	suite.Equal(ann.ID(), got[1].ID())
}

func (suite *UserRepositoryIntegrationTestSuite) newUser(email string, role user.Role, profile user.Profile) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), email, profile, role, "hash", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), u))
	return u
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
