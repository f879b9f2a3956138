package http

import (
	"errors"
	"net/http"

	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/core/application/usecases/queries"
	"fixit/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCity handles POST /api/cities.
func (s *Server) CreateCity(c echo.Context) error {
	var req NewCity
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateCityCommand(actorOf(c), kernel.NewUUID(), req.Name)
	if err != nil {
		return s.fail(c, err)
	}

	city, err := s.h.CreateCity.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toCity(city))
}

// ListCities handles GET /api/cities.
func (s *Server) ListCities(c echo.Context) error {
	cities, err := s.h.Cities.List(c.Request().Context(), queries.NewListCitiesQuery(actorOf(c)))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, mapSlice(cities, toCity))
}

// GetCity handles GET /api/cities/:id.
func (s *Server) GetCity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetCityQuery(actorOf(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	city, err := s.h.Cities.Get(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toCity(city))
}

// CreateAddress handles POST /api/addresses. The owner is the caller.
func (s *Server) CreateAddress(c echo.Context) error {
	var req NewAddress
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cityID, err := bodyID("city", req.City)
	gps, gpsErr := kernel.ParseGPSPosition(req.GPSPosition)
	if err = errors.Join(err, gpsErr); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateAddressCommand(actorOf(c), kernel.NewUUID(), req.Address, gps, cityID)
	if err != nil {
		return s.fail(c, err)
	}

	a, err := s.h.CreateAddress.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toAddress(a))
}

// ListAddresses handles GET /api/addresses.
func (s *Server) ListAddresses(c echo.Context) error {
	addresses, err := s.h.Addresses.List(c.Request().Context(), queries.NewListAddressesQuery(actorOf(c)))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, mapSlice(addresses, toAddress))
}

// GetAddress handles GET /api/addresses/:id.
func (s *Server) GetAddress(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetAddressQuery(actorOf(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	a, err := s.h.Addresses.Get(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toAddress(a))
}

// UpdateAddress handles PUT and PATCH /api/addresses/:id.
func (s *Server) UpdateAddress(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req AddressUpdate
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	patch := commands.AddressPatch{Line: req.Address}
	var errList []error
	if req.GPSPosition != nil {
		gps, gpsErr := kernel.ParseGPSPosition(*req.GPSPosition)
		errList = append(errList, gpsErr)
		patch.GPS = &gps
	}
	if req.City != nil {
		cityID, cityErr := bodyID("city", *req.City)
		errList = append(errList, cityErr)
		patch.CityID = &cityID
	}
	if err = errors.Join(errList...); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateAddressCommand(actorOf(c), id, patch)
	if err != nil {
		return s.fail(c, err)
	}

	a, err := s.h.UpdateAddress.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toAddress(a))
}

// DeleteAddress handles DELETE /api/addresses/:id. Orders placed at the
// address are removed with it.
func (s *Server) DeleteAddress(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteAddressCommand(actorOf(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteAddress.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
