package http

import (
	"errors"
	"net/http"

	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// fail writes err as a structured response. Anything that is not a known
// domain outcome is logged and reported as 500 without details.
func (s *Server) fail(c echo.Context, err error) error {
	status, body := classify(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}
	return c.JSON(status, body)
}

func classify(err error) (int, Error) {
	var (
		fieldsErr     *errs.FieldsNotAllowedError
		conflictErr   *errs.ConflictError
		validationErr validator.ValidationErrors
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &fieldsErr):
		return http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Fields:  fieldsErr.Fields,
		}
	case errors.As(err, &validationErr):
		fields := make([]string, 0, len(validationErr))
		for _, fe := range validationErr {
			fields = append(fields, fe.Field())
		}
		return http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
			Fields:  fields,
		}
	case errors.Is(err, commands.ErrInvalidCredentials):
		return newError(http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, commands.ErrResetLinkIsInvalid):
		return newError(http.StatusBadRequest, "Invalid reset link")
	case errors.Is(err, errs.ErrUnauthenticated):
		return newError(http.StatusUnauthorized, "Authentication credentials were not provided")
	case errors.Is(err, errs.ErrForbidden):
		return newError(http.StatusForbidden, "You do not have permission to perform this action")
	case errors.Is(err, errs.ErrObjectNotFound):
		return newError(http.StatusNotFound, "Not found")
	case errors.As(err, &conflictErr):
		return http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: conflictErr.ParamName + " already exists",
			Fields:  []string{conflictErr.ParamName},
		}
	case errs.IsValidation(err):
		return newError(http.StatusBadRequest, err.Error())
	case errors.As(err, &httpErr):
		return newError(httpErr.Code, http.StatusText(httpErr.Code))
	default:
		return newError(http.StatusInternalServerError, "Internal server error")
	}
}

func newError(status int, message string) (int, Error) {
	return status, Error{Code: status, Message: message}
}

// errorHandler renders errors returned by echo itself (unknown routes,
// wrong methods, recovered panics) in the same shape as handler errors.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if writeErr := s.fail(c, err); writeErr != nil {
		s.logger.Error("Failed to write error response", "error", writeErr)
	}
}
