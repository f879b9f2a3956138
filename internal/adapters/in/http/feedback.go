package http

import (
	"net/http"

	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/core/application/usecases/queries"
	"fixit/internal/core/domain/model/complaint"
	"fixit/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateComplaint handles POST /api/complaints.
func (s *Server) CreateComplaint(c echo.Context) error {
	var req NewComplaint
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateComplaintCommand(actorOf(c), kernel.NewUUID(), complaint.Type(req.Type), req.Message)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreateComplaint.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toComplaint(created))
}

func (s *Server) ListComplaints(c echo.Context) error {
	complaints, err := s.h.Complaints.List(c.Request().Context(), queries.NewListFeedbackQuery(actorOf(c)))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, mapSlice(complaints, toComplaint))
}

func (s *Server) GetComplaint(c echo.Context) error {
	query, err := feedbackQuery(c)
	if err != nil {
		return s.fail(c, err)
	}

	found, err := s.h.Complaints.Get(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toComplaint(found))
}

func (s *Server) DeleteComplaint(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteComplaintCommand(actorOf(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteComplaint.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateRating handles POST /api/ratings. Only completed orders can be rated.
func (s *Server) CreateRating(c echo.Context) error {
	var req NewRating
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	orderID, err := bodyID("order", req.Order)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateRatingCommand(actorOf(c), kernel.NewUUID(), orderID, req.Rate, req.Note)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.h.CreateRating.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toRating(created))
}

func (s *Server) ListRatings(c echo.Context) error {
	ratings, err := s.h.Ratings.List(c.Request().Context(), queries.NewListFeedbackQuery(actorOf(c)))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, mapSlice(ratings, toRating))
}

func (s *Server) GetRating(c echo.Context) error {
	query, err := feedbackQuery(c)
	if err != nil {
		return s.fail(c, err)
	}

	found, err := s.h.Ratings.Get(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toRating(found))
}

func (s *Server) DeleteRating(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteRatingCommand(actorOf(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteRating.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func feedbackQuery(c echo.Context) (queries.GetFeedbackQuery, error) {
	id, err := pathID(c)
	if err != nil {
		return queries.GetFeedbackQuery{}, err
	}
	return queries.NewGetFeedbackQuery(actorOf(c), id)
}
