package http

import (
	"net/http"
	"time"

	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/core/application/usecases/queries"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime/types"
)

// CreateUser handles POST /api/users. Registration is open; the role rules
// are applied by the use case.
func (s *Server) CreateUser(c echo.Context) error {
	var req NewUser
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	profile := user.Profile{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		BirthDate:      dateOf(req.BirthDate),
		Gender:         genderOf(req.Gender),
		Phone:          req.Phone,
		Photo:          req.Photo,
		WorkExperience: req.WorkExperience,
	}

	cmd, err := commands.NewCreateUserCommand(actorOf(c), kernel.NewUUID(), req.Email, req.Password, profile, user.Role(req.UserType))
	if err != nil {
		return s.fail(c, err)
	}

	u, err := s.h.CreateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toUser(u))
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(c echo.Context) error {
	filter, ordering, err := userFilter(c)
	if err != nil {
		return s.fail(c, err)
	}

	users, err := s.h.ListUsers.Handle(c.Request().Context(), queries.NewListUsersQuery(actorOf(c), filter, ordering))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, mapSlice(users, toUser))
}

// GetUser handles GET /api/users/:id.
func (s *Server) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	withDeleted, err := includeDeleted(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetUserQuery(actorOf(c), id, withDeleted)
	if err != nil {
		return s.fail(c, err)
	}

	u, err := s.h.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toUser(u))
}

// UpdateUser handles PUT and PATCH /api/users/:id. Both are partial.
func (s *Server) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	withDeleted, err := includeDeleted(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req UserUpdate
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	patch := commands.UserPatch{
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		BirthDate:      dateOf(req.BirthDate),
		Gender:         genderOf(req.Gender),
		Phone:          req.Phone,
		Photo:          req.Photo,
		WorkExperience: req.WorkExperience,
	}

	cmd, err := commands.NewUpdateUserCommand(actorOf(c), id, patch, withDeleted)
	if err != nil {
		return s.fail(c, err)
	}

	u, err := s.h.UpdateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toUser(u))
}

// DeleteUser handles DELETE /api/users/:id. The account is only marked deleted.
func (s *Server) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	withDeleted, err := includeDeleted(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteUserCommand(actorOf(c), id, withDeleted)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func dateOf(d *types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func genderOf(code *int) *user.Gender {
	if code == nil {
		return nil
	}
	g := user.Gender(*code)
	return &g
}
