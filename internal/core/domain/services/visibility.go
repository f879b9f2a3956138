package services

import (
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
)

// VisibilityKind names the row set a caller may see. Repositories translate
// each kind into a filter on their own table.
type VisibilityKind int

const (
	// VisibleToNobody yields no rows.
	VisibleToNobody VisibilityKind = iota
	// VisibleToAll applies no ownership filter.
	VisibleToAll
	// VisibleToOwner keeps rows owned by UserID: order customer, address user,
	// complaint author, offer worker.
	VisibleToOwner
	// VisibleToOrderCustomer keeps offers or ratings on orders whose customer is UserID.
	VisibleToOrderCustomer
	// VisibleToOfferingWorker keeps orders UserID submitted at least one offer on.
	// Each order appears once however many offers it has.
	VisibleToOfferingWorker
	// VisibleToOrderCustomerOrAuthor keeps ratings on UserID's orders together
	// with ratings UserID wrote, each row once.
	VisibleToOrderCustomerOrAuthor
)

// Visibility is the role-scoped base set a query starts from, before any
// client filter is applied.
type Visibility struct {
	Kind   VisibilityKind
	UserID kernel.UUID
}

func nobody() Visibility {
	return Visibility{Kind: VisibleToNobody}
}

func everyone() Visibility {
	return Visibility{Kind: VisibleToAll}
}

func scoped(kind VisibilityKind, actor user.Actor) Visibility {
	return Visibility{Kind: kind, UserID: actor.ID()}
}

// OrderVisibility: customers see their own orders, workers the orders they
// offered on, admins and technical support everything.
func OrderVisibility(actor user.Actor) Visibility {
	if !actor.IsAuthenticated() {
		return nobody()
	}
	switch actor.Role() {
	case user.Customer:
		return scoped(VisibleToOwner, actor)
	case user.Worker:
		return scoped(VisibleToOfferingWorker, actor)
	case user.Admin, user.TechnicalSupport:
		return everyone()
	case user.RoleNone:
		return nobody()
	}
	return nobody()
}

// OfferVisibility: workers see their own offers, everyone else the offers
// made on their orders.
func OfferVisibility(actor user.Actor) Visibility {
	if !actor.IsAuthenticated() {
		return nobody()
	}
	if actor.Is(user.Worker) {
		return scoped(VisibleToOwner, actor)
	}
	return scoped(VisibleToOrderCustomer, actor)
}

// ComplaintVisibility: admins see all complaints, authors their own.
func ComplaintVisibility(actor user.Actor) Visibility {
	if !actor.IsAuthenticated() {
		return nobody()
	}
	if actor.Is(user.Admin) {
		return everyone()
	}
	return scoped(VisibleToOwner, actor)
}

// RatingVisibility is the union of ratings on the caller's orders and
// ratings the caller wrote.
func RatingVisibility(actor user.Actor) Visibility {
	if !actor.IsAuthenticated() {
		return nobody()
	}
	return scoped(VisibleToOrderCustomerOrAuthor, actor)
}

// AddressVisibility: own addresses only, whatever the role.
func AddressVisibility(actor user.Actor) Visibility {
	if !actor.IsAuthenticated() {
		return nobody()
	}
	return scoped(VisibleToOwner, actor)
}
