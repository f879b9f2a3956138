package http

import (
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/core/application/usecases/queries"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handlers groups the use cases the REST surface is built on.
type Handlers struct {
	CreateUser commands.CreateUserCommandHandler
	UpdateUser commands.UpdateUserCommandHandler
	DeleteUser commands.DeleteUserCommandHandler

	CreateCity commands.CreateCityCommandHandler

	CreateAddress commands.CreateAddressCommandHandler
	UpdateAddress commands.UpdateAddressCommandHandler
	DeleteAddress commands.DeleteAddressCommandHandler

	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler

	CreateOffer commands.CreateOfferCommandHandler
	UpdateOffer commands.UpdateOfferCommandHandler
	DeleteOffer commands.DeleteOfferCommandHandler

	CreateComplaint commands.CreateComplaintCommandHandler
	DeleteComplaint commands.DeleteComplaintCommandHandler

	CreateRating commands.CreateRatingCommandHandler
	DeleteRating commands.DeleteRatingCommandHandler

	Login                commands.LoginCommandHandler
	Logout               commands.LogoutCommandHandler
	RequestPasswordReset commands.RequestPasswordResetCommandHandler
	ResetPassword        commands.ResetPasswordCommandHandler

	ListUsers  queries.ListUsersQueryHandler
	GetUser    queries.GetUserQueryHandler
	Cities     queries.CityQueryHandler
	Addresses  queries.AddressQueryHandler
	ListOrders queries.ListOrdersQueryHandler
	GetOrder   queries.GetOrderQueryHandler
	Offers     queries.OfferQueryHandler
	Complaints queries.ComplaintQueryHandler
	Ratings    queries.RatingQueryHandler
}

// Server exposes the marketplace over HTTP. It turns requests into commands
// and queries and maps their outcome back to status codes.
type Server struct {
	h        Handlers
	tokens   ports.TokenIssuer
	denylist ports.TokenDenylist
	policy   services.AccessPolicy
	validate *validator.Validate
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, tokens ports.TokenIssuer, denylist ports.TokenDenylist, logger *slog.Logger) *Server {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &Server{
		h:        h,
		tokens:   tokens,
		denylist: denylist,
		policy:   services.NewAccessPolicy(),
		validate: v,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts every route under /api on e, together with the shared
// middleware chain.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.errorHandler
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(s.requestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api", s.authenticate)

	api.POST("/users", s.CreateUser)
	api.GET("/users", s.ListUsers)
	api.GET("/users/:id", s.GetUser)
	api.PUT("/users/:id", s.UpdateUser)
	api.PATCH("/users/:id", s.UpdateUser)
	api.DELETE("/users/:id", s.DeleteUser)

	api.POST("/cities", s.CreateCity)
	api.GET("/cities", s.ListCities)
	api.GET("/cities/:id", s.GetCity)

	api.POST("/addresses", s.CreateAddress)
	api.GET("/addresses", s.ListAddresses)
	api.GET("/addresses/:id", s.GetAddress)
	api.PUT("/addresses/:id", s.UpdateAddress)
	api.PATCH("/addresses/:id", s.UpdateAddress)
	api.DELETE("/addresses/:id", s.DeleteAddress)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.POST("/orders/:id/update_status", s.ChangeOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.POST("/offers", s.CreateOffer)
	api.GET("/offers", s.ListOffers)
	api.GET("/offers/:id", s.GetOffer)
	api.PUT("/offers/:id", s.UpdateOffer)
	api.PATCH("/offers/:id", s.UpdateOffer)
	api.DELETE("/offers/:id", s.DeleteOffer)

	api.POST("/complaints", s.CreateComplaint)
	api.GET("/complaints", s.ListComplaints)
	api.GET("/complaints/:id", s.GetComplaint)
	api.DELETE("/complaints/:id", s.DeleteComplaint)

	api.POST("/ratings", s.CreateRating)
	api.GET("/ratings", s.ListRatings)
	api.GET("/ratings/:id", s.GetRating)
	api.DELETE("/ratings/:id", s.DeleteRating)

	api.POST("/login", s.Login)
	api.POST("/logout", s.Logout)
	api.POST("/forgot-password", s.ForgotPassword)
	api.POST("/reset-password/:token", s.ResetPassword)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			s.logger.InfoContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	})
}

// bind decodes the JSON body into dst and runs its validate tags.
func (s *Server) bind(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
	}
	return s.validate.Struct(dst)
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
