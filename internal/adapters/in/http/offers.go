package http

import (
	"net/http"

	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/core/application/usecases/queries"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/offer"

	"github.com/labstack/echo/v4"
)

// CreateOffer handles POST /api/offers. The worker is the caller, whatever
// the body says.
func (s *Server) CreateOffer(c echo.Context) error {
	var req NewOffer
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	orderID, err := bodyID("order", req.Order)
	if err != nil {
		return s.fail(c, err)
	}

	terms := offer.Terms{
		Price:        req.Price,
		CompanyPaid:  req.CompanyPaid,
		Notes:        req.Notes,
		LastTimeDate: req.LastTimeDate,
		ExpectedDate: req.ExpectedDate,
	}

	cmd, err := commands.NewCreateOfferCommand(actorOf(c), kernel.NewUUID(), orderID, terms)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.CreateOffer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toOffer(o))
}

// ListOffers handles GET /api/offers.
func (s *Server) ListOffers(c echo.Context) error {
	filter, ordering, err := offerFilter(c)
	if err != nil {
		return s.fail(c, err)
	}

	offers, err := s.h.Offers.List(c.Request().Context(), queries.NewListOffersQuery(actorOf(c), filter, ordering))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, mapSlice(offers, toOffer))
}

// GetOffer handles GET /api/offers/:id.
func (s *Server) GetOffer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOfferQuery(actorOf(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.Offers.Get(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOffer(o))
}

// UpdateOffer handles PUT and PATCH /api/offers/:id. Accepting an offer
// does not change its order.
func (s *Server) UpdateOffer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req OfferUpdate
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	patch := offer.Patch{
		IsAccept:     req.IsAccept,
		Price:        req.Price,
		CompanyPaid:  req.CompanyPaid,
		Notes:        req.Notes,
		LastTimeDate: req.LastTimeDate,
		ExpectedDate: req.ExpectedDate,
	}
	if req.Status != nil {
		st := offer.Status(*req.Status)
		patch.Status = &st
	}

	cmd, err := commands.NewUpdateOfferCommand(actorOf(c), id, patch)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.UpdateOffer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOffer(o))
}

// DeleteOffer handles DELETE /api/offers/:id.
func (s *Server) DeleteOffer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteOfferCommand(actorOf(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteOffer.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
