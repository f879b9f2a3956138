package http

import (
	"net/http"

	"fixit/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/login and returns a bearer token.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.Login.Handle(c.Request().Context(), commands.NewLoginCommand(req.Email, req.Password))
	if err != nil {
		return s.fail(c, err)
	}

	u := result.User
	return c.JSON(http.StatusOK, LoginResponse{
		Detail:    "Login successful",
		Token:     result.Token.Value,
		ExpiresAt: result.Token.ExpiresAt,
		UserID:    u.ID().String(),
		Email:     u.Email(),
		FirstName: u.Profile().FirstName,
		LastName:  u.Profile().LastName,
		UserType:  int(u.Role()),
	})
}

// Logout handles POST /api/logout by revoking the token of the request.
func (s *Server) Logout(c echo.Context) error {
	sess := sessionOf(c)

	cmd, err := commands.NewLogoutCommand(actorOf(c), sess.tokenID, sess.expiresAt)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.Logout.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Detail{Detail: "Logout successful"})
}

// ForgotPassword handles POST /api/forgot-password.
func (s *Server) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	if err := s.h.RequestPasswordReset.Handle(c.Request().Context(), commands.NewRequestPasswordResetCommand(req.Email)); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Detail{Detail: "Password reset email sent"})
}

// ResetPassword handles POST /api/reset-password/:token.
func (s *Server) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd := commands.NewResetPasswordCommand(c.Param("token"), req.NewPassword)
	if err := s.h.ResetPassword.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, Detail{Detail: "Password has been reset successfully"})
}
