package cmd

import (
	"log/slog"

	httpin "fixit/internal/adapters/in/http"
	"fixit/internal/adapters/out/mailer"
	"fixit/internal/adapters/out/postgres"
	redisout "fixit/internal/adapters/out/redis"
	"fixit/internal/adapters/out/security"
	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/core/application/usecases/queries"
	"fixit/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	reader     *postgres.Reader

	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	denylist ports.TokenDenylist
	resets   ports.ResetTokenStore
	mailer   ports.Mailer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		reader:     postgres.NewReader(gormDB),
		hasher:     security.NewBcryptHasher(config.PasswordHashingCost),
		tokens:     security.NewJWTService(config.JWTSecret, config.JWTTTL),
		denylist:   redisout.NewTokenDenylist(redisClient),
		resets:     redisout.NewResetTokenStore(redisClient, config.ResetTokenTTL),
		mailer:     mailer.NewLogMailer(logger),
	}
}

// NewServer assembles the HTTP adapter with every command and query handler.
func (c *CompositionRoot) NewServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateUser: c.CreateCreateUserCommandHandler(),
		UpdateUser: commands.NewUpdateUserCommandHandler(c.userUoWFactory(), c.hasher),
		DeleteUser: commands.NewDeleteUserCommandHandler(c.userUoWFactory()),

		CreateCity: commands.NewCreateCityCommandHandler(c.cityUoWFactory()),

		CreateAddress: commands.NewCreateAddressCommandHandler(c.addressUoWFactory()),
		UpdateAddress: commands.NewUpdateAddressCommandHandler(c.addressUoWFactory()),
		DeleteAddress: commands.NewDeleteAddressCommandHandler(c.addressUoWFactory()),

		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrder:       commands.NewUpdateOrderCommandHandler(c.orderUoWFactory()),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:       commands.NewDeleteOrderCommandHandler(c.orderUoWFactory()),

		CreateOffer: commands.NewCreateOfferCommandHandler(c.offerUoWFactory()),
		UpdateOffer: commands.NewUpdateOfferCommandHandler(c.offerUoWFactory()),
		DeleteOffer: commands.NewDeleteOfferCommandHandler(c.offerUoWFactory()),

		CreateComplaint: commands.NewCreateComplaintCommandHandler(c.complaintUoWFactory()),
		DeleteComplaint: commands.NewDeleteComplaintCommandHandler(c.complaintUoWFactory()),

		CreateRating: commands.NewCreateRatingCommandHandler(c.ratingUoWFactory()),
		DeleteRating: commands.NewDeleteRatingCommandHandler(c.ratingUoWFactory()),

		Login:  commands.NewLoginCommandHandler(c.userUoWFactory(), c.hasher, c.tokens),
		Logout: commands.NewLogoutCommandHandler(c.denylist),
		RequestPasswordReset: commands.NewRequestPasswordResetCommandHandler(
			c.userUoWFactory(), c.resets, c.mailer, c.config.FrontendURL,
		),
		ResetPassword: commands.NewResetPasswordCommandHandler(c.userUoWFactory(), c.resets, c.hasher),

		ListUsers:  queries.NewListUsersQueryHandler(c.reader.Users()),
		GetUser:    queries.NewGetUserQueryHandler(c.reader.Users()),
		Cities:     queries.NewCityQueryHandler(c.reader.Cities()),
		Addresses:  queries.NewAddressQueryHandler(c.reader.Addresses()),
		ListOrders: c.CreateListOrdersQueryHandler(),
		GetOrder:   queries.NewGetOrderQueryHandler(c.reader.Orders()),
		Offers:     queries.NewOfferQueryHandler(c.reader.Offers()),
		Complaints: queries.NewComplaintQueryHandler(c.reader.Complaints()),
		Ratings:    queries.NewRatingQueryHandler(c.reader.Ratings()),
	}, c.tokens, c.denylist, c.logger)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reader.Orders())
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cityUoWFactory() commands.CityUoWFactory {
	return FuncCityUoWFactory(func() commands.CityUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) addressUoWFactory() commands.AddressUoWFactory {
	return FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) offerUoWFactory() commands.OfferUoWFactory {
	return FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) complaintUoWFactory() commands.ComplaintUoWFactory {
	return FuncComplaintUoWFactory(func() commands.ComplaintUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ratingUoWFactory() commands.RatingUoWFactory {
	return FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncCityUoWFactory func() commands.CityUoW

func (f FuncCityUoWFactory) Create() commands.CityUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}

type FuncComplaintUoWFactory func() commands.ComplaintUoW

func (f FuncComplaintUoWFactory) Create() commands.ComplaintUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}
