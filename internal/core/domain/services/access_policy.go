package services

import (
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/errs"
)

// AccessRequest describes what the caller wants to do.
//
// Owner is the owning user of the target resource. Resource-scoped actions
// (address read/update/delete, order update/status/delete) are checked twice:
// with a nil Owner before the resource is loaded, which applies the
// caller-level rules only, and with the loaded Owner afterwards.
// RequestedRole is only read for CreateUser.
type AccessRequest struct {
	Action        Action
	Owner         *kernel.UUID
	RequestedRole user.Role
}

// AccessPolicy decides whether an actor may perform an action.
//
// Business rules:
//   - Nobody may create an Admin account; a TechnicalSupport account needs an Admin caller
//   - Only customers create orders; only workers create offers
//   - Orders are changed or deleted by their customer or by an Admin
//   - Addresses of other users are reported as not found
//   - Reading users and cities is open; most other actions need an
//     authenticated caller and are narrowed further by Visibility
//
// Example usage:
//
//	policy := services.NewAccessPolicy()
//	if err := policy.Authorize(actor, services.AccessRequest{Action: services.UpdateOrder}); err != nil {
//	    return err
//	}
//	// load the order ...
//	owner := o.CustomerID()
//	if err := policy.Authorize(actor, services.AccessRequest{Action: services.UpdateOrder, Owner: &owner}); err != nil {
//	    return err // *errs.AccessDeniedError
//	}
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize returns nil to allow the request or an *errs.AccessDeniedError
// whose Kind tells unauthenticated, forbidden and hidden apart.
func (AccessPolicy) Authorize(actor user.Actor, req AccessRequest) error {
	switch req.Action {
	case CreateUser:
		return authorizeUserCreation(actor, req.RequestedRole)

	case ReadUser, ListCities, ReadCity, ListOrders:
		return nil

	case ListUsers, UpdateUser, DeleteUser,
		CreateCity,
		CreateAddress, ListAddresses,
		ReadOrder,
		ListOffers, ReadOffer, UpdateOffer, DeleteOffer,
		CreateComplaint, ListComplaints, ReadComplaint, DeleteComplaint,
		CreateRating, ListRatings, ReadRating, DeleteRating,
		Logout:
		return requireAuthenticated(actor, req.Action)

	case ReadAddress, UpdateAddress, DeleteAddress:
		if err := requireAuthenticated(actor, req.Action); err != nil {
			return err
		}
		if req.Owner != nil && !actor.Owns(*req.Owner) {
			return errs.NewHiddenError("address is not visible to the caller")
		}
		return nil

	case CreateOrder:
		return requireRole(actor, req.Action, user.Customer, "only customers can create orders")

	case UpdateOrder, ChangeOrderStatus, DeleteOrder:
		return authorizeOrderChange(actor, req)

	case CreateOffer:
		return requireRole(actor, req.Action, user.Worker, "only workers can create offers")

	case ActionUnknown:
		return errs.NewForbiddenError("unknown action")
	}

	return errs.NewForbiddenError("unknown action")
}

func authorizeUserCreation(actor user.Actor, requested user.Role) error {
	switch requested {
	case user.Admin:
		return errs.NewForbiddenError("cannot create admin users")
	case user.TechnicalSupport:
		if !actor.Is(user.Admin) {
			return errs.NewForbiddenError("only admins can create technical support users")
		}
		return nil
	case user.Customer, user.Worker, user.RoleNone:
		return nil
	}
	return nil
}

func authorizeOrderChange(actor user.Actor, req AccessRequest) error {
	if err := requireAuthenticated(actor, req.Action); err != nil {
		return err
	}

	switch actor.Role() {
	case user.Admin:
		return nil
	case user.Customer:
		if req.Owner == nil || actor.Owns(*req.Owner) {
			return nil
		}
	case user.Worker, user.TechnicalSupport, user.RoleNone:
	}

	return errs.NewForbiddenError("you don't have permission to " + req.Action.String())
}

func requireAuthenticated(actor user.Actor, action Action) error {
	if !actor.IsAuthenticated() {
		return errs.NewUnauthenticatedError(action.String() + " requires authentication")
	}
	return nil
}

func requireRole(actor user.Actor, action Action, role user.Role, reason string) error {
	if err := requireAuthenticated(actor, action); err != nil {
		return err
	}
	if !actor.Is(role) {
		return errs.NewForbiddenError(reason)
	}
	return nil
}
