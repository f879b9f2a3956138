package ports

import (
	"time"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/model/offer"
	"fixit/internal/core/domain/model/user"
)

// Ordering is one ORDER BY term. Field is a client-facing field name that
// the repository maps to a column; unknown names never reach a repository.
type Ordering struct {
	Field      string
	Descending bool
}

// UserFilter narrows the user listing. Zero values mean "no filter".
type UserFilter struct {
	Email          string
	FullName       string
	Role           *user.Role
	Gender         *user.Gender
	Search         string
	IncludeDeleted bool
	Ordering       []Ordering
}

// OrderFilter is applied on top of the caller's order visibility.
type OrderFilter struct {
	Statuses      []order.Status
	BudgetMin     *float64
	BudgetMax     *float64
	CustomerID    *kernel.UUID
	CustomerEmail string
	CityID        *kernel.UUID
	AddressID     *kernel.UUID
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Search        string
	Ordering      []Ordering
}

// OfferFilter is applied on top of the caller's offer visibility.
type OfferFilter struct {
	Statuses    []offer.Status
	IsAccept    *bool
	OrderID     *kernel.UUID
	WorkerID    *kernel.UUID
	PriceMin    *float64
	PriceMax    *float64
	WorkerEmail string
	OrderStatus *order.Status
	Search      string
	Ordering    []Ordering
}
