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
	ErrListCitiesQueryIsNotConstructed = errors.New("ListCitiesQuery must be created via NewListCitiesQuery constructor")
	ErrGetCityQueryIsNotConstructed    = errors.New("GetCityQuery must be created via NewGetCityQuery constructor")
)

// Cities are reference data, readable by anyone.

type ListCitiesQuery struct {
	actor user.Actor
	guard guard.ConstructorGuard
}

func NewListCitiesQuery(actor user.Actor) ListCitiesQuery {
	return ListCitiesQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListCitiesQuery) Validate() error {
	return q.guard.Validate(ErrListCitiesQueryIsNotConstructed)
}

type GetCityQuery struct {
	actor  user.Actor
	cityID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetCityQuery(actor user.Actor, cityID kernel.UUID) (GetCityQuery, error) {
	if err := cityID.Validate(); err != nil {
		return GetCityQuery{}, err
	}
	return GetCityQuery{actor: actor, cityID: cityID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCityQuery) Validate() error {
	return q.guard.Validate(ErrGetCityQueryIsNotConstructed)
}

type CityQueryHandler struct {
	repo   ports.CityRepository
	policy services.AccessPolicy
}

func NewCityQueryHandler(repo ports.CityRepository) CityQueryHandler {
	return CityQueryHandler{repo: repo, policy: services.NewAccessPolicy()}
}

func (h CityQueryHandler) List(ctx context.Context, query ListCitiesQuery) ([]*address.City, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.AccessRequest{Action: services.ListCities}); err != nil {
		return nil, err
	}
	return h.repo.List(ctx)
}

func (h CityQueryHandler) Get(ctx context.Context, query GetCityQuery) (*address.City, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.AccessRequest{Action: services.ReadCity}); err != nil {
		return nil, err
	}
	return h.repo.Get(ctx, query.cityID)
}
