package http

import (
	"errors"
	"time"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/offer"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// pathID reads the :id path segment. A malformed id cannot name any object,
// so it is reported as not found.
func pathID(c echo.Context) (kernel.UUID, error) {
	var raw string
	if err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true},
	); err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("id", c.Param("id"), err)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("id", raw, err)
	}
	return id, nil
}

// bodyID parses an id referenced from a request body.
func bodyID(paramName, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

type queryReader struct {
	c    echo.Context
	errs []error
}

func newQueryReader(c echo.Context) *queryReader {
	return &queryReader{c: c}
}

func (q *queryReader) bind(name string, explode bool, dst any) {
	if err := runtime.BindQueryParameter("form", explode, false, name, q.c.QueryParams(), dst); err != nil {
		q.errs = append(q.errs, errs.NewValueIsInvalidErrorWithCause(name, err))
	}
}

func (q *queryReader) String(name string) string {
	var v *string
	q.bind(name, true, &v)
	if v == nil {
		return ""
	}
	return *v
}

func (q *queryReader) Bool(name string) *bool {
	var v *bool
	q.bind(name, true, &v)
	return v
}

func (q *queryReader) Int(name string) *int {
	var v *int
	q.bind(name, true, &v)
	return v
}

func (q *queryReader) Float(name string) *float64 {
	var v *float64
	q.bind(name, true, &v)
	return v
}

// Ints reads a comma separated list such as status=1,2.
func (q *queryReader) Ints(name string) []int {
	var v *[]int
	q.bind(name, false, &v)
	if v == nil {
		return nil
	}
	return *v
}

// Time accepts RFC 3339 timestamps and plain dates.
func (q *queryReader) Time(name string) *time.Time {
	var v *time.Time
	q.bind(name, true, &v)
	return v
}

func (q *queryReader) UUID(name string) *kernel.UUID {
	raw := q.String(name)
	if raw == "" {
		return nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		q.errs = append(q.errs, errs.NewValueIsInvalidErrorWithCause(name, err))
		return nil
	}
	return &id
}

func (q *queryReader) Err() error {
	return errors.Join(q.errs...)
}

func includeDeleted(c echo.Context) (bool, error) {
	q := newQueryReader(c)
	v := q.Bool("is_deleted")
	return v != nil && *v, q.Err()
}

func userFilter(c echo.Context) (ports.UserFilter, string, error) {
	q := newQueryReader(c)
	filter := ports.UserFilter{
		Email:    q.String("email"),
		FullName: q.String("full_name"),
		Search:   q.String("search"),
	}
	if code := q.Int("user_type"); code != nil {
		role := user.Role(*code)
		filter.Role = &role
	}
	if code := q.Int("gender"); code != nil {
		gender := user.Gender(*code)
		filter.Gender = &gender
	}
	if v := q.Bool("is_deleted"); v != nil {
		filter.IncludeDeleted = *v
	}
	return filter, q.String("ordering"), q.Err()
}

func orderFilter(c echo.Context) (ports.OrderFilter, string, error) {
	q := newQueryReader(c)
	filter := ports.OrderFilter{
		BudgetMin:     q.Float("budget_min"),
		BudgetMax:     q.Float("budget_max"),
		CustomerID:    q.UUID("customer"),
		CustomerEmail: q.String("customer_email"),
		CityID:        q.UUID("city"),
		AddressID:     q.UUID("address"),
		CreatedAfter:  q.Time("created_date_after"),
		CreatedBefore: q.Time("created_date_before"),
		Search:        q.String("search"),
	}
	for _, code := range q.Ints("status") {
		filter.Statuses = append(filter.Statuses, order.Status(code))
	}
	return filter, q.String("ordering"), q.Err()
}

func offerFilter(c echo.Context) (ports.OfferFilter, string, error) {
	q := newQueryReader(c)
	filter := ports.OfferFilter{
		IsAccept:    q.Bool("is_accept"),
		OrderID:     q.UUID("order"),
		WorkerID:    q.UUID("worker"),
		PriceMin:    q.Float("price_min"),
		PriceMax:    q.Float("price_max"),
		WorkerEmail: q.String("worker_email"),
		Search:      q.String("search"),
	}
	for _, code := range q.Ints("status") {
		filter.Statuses = append(filter.Statuses, offer.Status(code))
	}
	if code := q.Int("order_status"); code != nil {
		status := order.Status(*code)
		filter.OrderStatus = &status
	}
	return filter, q.String("ordering"), q.Err()
}
