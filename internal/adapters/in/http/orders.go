package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/core/application/usecases/queries"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/domain/services"
	"fixit/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/orders. Any status in the body is ignored.
func (s *Server) CreateOrder(c echo.Context) error {
	var req NewOrder
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	addressID, err := bodyID("address", req.Address)
	if err != nil {
		return s.fail(c, err)
	}

	details := order.Details{
		Notes:      req.Notes,
		Photo:      req.Photo,
		ShortVideo: req.ShortVideo,
		Budget:     req.Budget,
	}

	cmd, err := commands.NewCreateOrderCommand(actorOf(c), kernel.NewUUID(), addressID, details)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toOrder(o))
}

// ListOrders handles GET /api/orders - the caller's visible orders, filtered.
func (s *Server) ListOrders(c echo.Context) error {
	filter, ordering, err := orderFilter(c)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.h.ListOrders.Handle(c.Request().Context(), queries.NewListOrdersQuery(actorOf(c), filter, ordering))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, mapSlice(orders, toOrder))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(actorOf(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrder handles PUT and PATCH /api/orders/:id.
//
// The caller's role is checked before the body is looked at. The customer
// allow-list is checked against the field names as sent, before any value
// is decoded, so the body is read raw first.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	actor := actorOf(c)
	if err = s.policy.Authorize(actor, services.AccessRequest{Action: services.UpdateOrder}); err != nil {
		return s.fail(c, err)
	}

	body, fields, err := rawBody(c)
	if err != nil {
		return s.fail(c, err)
	}

	if actor.Is(user.Customer) {
		if err = order.CheckCustomerFields(fieldNames(fields)); err != nil {
			return s.fail(c, err)
		}
	}

	var patch order.Patch
	if raw, ok := fields[order.FieldStatus]; ok {
		status, statusErr := statusCode(raw)
		if statusErr != nil {
			return s.fail(c, statusErr)
		}
		st := order.Status(*status)
		patch.Status = &st
	}

	var req OrderUpdate
	if err = decodeInto(body, &req); err != nil {
		return s.fail(c, err)
	}
	if err = s.validate.Struct(req); err != nil {
		return s.fail(c, err)
	}

	patch.Notes = req.Notes
	patch.Photo = req.Photo
	patch.ShortVideo = req.ShortVideo
	patch.Budget = req.Budget
	if req.Address != nil {
		addressID, addrErr := bodyID("address", *req.Address)
		if addrErr != nil {
			return s.fail(c, addrErr)
		}
		patch.AddressID = &addressID
	}

	cmd, err := commands.NewUpdateOrderCommand(actor, id, patch, fieldNames(fields))
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(o))
}

// ChangeOrderStatus handles POST /api/orders/:id/update_status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	actor := actorOf(c)
	if err = s.policy.Authorize(actor, services.AccessRequest{Action: services.ChangeOrderStatus}); err != nil {
		return s.fail(c, err)
	}

	_, fields, err := rawBody(c)
	if err != nil {
		return s.fail(c, err)
	}

	var status *int
	if raw, ok := fields[order.FieldStatus]; ok {
		if status, err = statusCode(raw); err != nil {
			return s.fail(c, err)
		}
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actor, id, status)
	if err != nil {
		return s.fail(c, err)
	}

	if _, err = s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Detail{Detail: "Order status updated successfully"})
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(actorOf(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// rawBody returns the request body and its top-level members. An empty body
// is an empty object.
func rawBody(c echo.Context) ([]byte, map[string]json.RawMessage, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
	}

	fields := make(map[string]json.RawMessage)
	if len(bytes.TrimSpace(body)) == 0 {
		return body, fields, nil
	}
	if err = json.Unmarshal(body, &fields); err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
	}
	return body, fields, nil
}

func decodeInto(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
	}
	return nil
}

// statusCode accepts only a JSON integer.
func statusCode(raw json.RawMessage) (*int, error) {
	var code *int
	if err := json.Unmarshal(raw, &code); err != nil || code == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(order.FieldStatus, err)
	}
	return code, nil
}

func fieldNames(fields map[string]json.RawMessage) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	return names
}
