package queries

import (
	"context"
	"errors"

	"fixit/internal/core/domain/model/address"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/guard"
)

var (
	ErrListAddressesQueryIsNotConstructed = errors.New(
		"ListAddressesQuery must be created via NewListAddressesQuery constructor",
	)
	ErrGetAddressQueryIsNotConstructed = errors.New("GetAddressQuery must be created via NewGetAddressQuery constructor")
)

type ListAddressesQuery struct {
	actor user.Actor
	guard guard.ConstructorGuard
}

func NewListAddressesQuery(actor user.Actor) ListAddressesQuery {
	return ListAddressesQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListAddressesQuery) Validate() error {
	return q.guard.Validate(ErrListAddressesQueryIsNotConstructed)
}

type GetAddressQuery struct {
	actor     user.Actor
	addressID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetAddressQuery(actor user.Actor, addressID kernel.UUID) (GetAddressQuery, error) {
	if err := addressID.Validate(); err != nil {
		return GetAddressQuery{}, err
	}
	return GetAddressQuery{actor: actor, addressID: addressID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAddressQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressQueryIsNotConstructed)
}

// AddressQueryHandler reads the caller's own addresses. An address of
// another user is reported as not found.
type AddressQueryHandler struct {
	repo   ports.AddressRepository
	policy services.AccessPolicy
}

func NewAddressQueryHandler(repo ports.AddressRepository) AddressQueryHandler {
	return AddressQueryHandler{repo: repo, policy: services.NewAccessPolicy()}
}

func (h AddressQueryHandler) List(ctx context.Context, query ListAddressesQuery) ([]*address.Address, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.AccessRequest{Action: services.ListAddresses}); err != nil {
		return nil, err
	}
	return h.repo.List(ctx, services.AddressVisibility(query.actor))
}

func (h AddressQueryHandler) Get(ctx context.Context, query GetAddressQuery) (*address.Address, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.AccessRequest{Action: services.ReadAddress}); err != nil {
		return nil, err
	}

	a, err := h.repo.Get(ctx, query.addressID)
	if err != nil {
		return nil, err
	}

	owner := a.OwnerID()
	if err = h.policy.Authorize(query.actor, services.AccessRequest{Action: services.ReadAddress, Owner: &owner}); err != nil {
		return nil, err
	}
	return a, nil
}
