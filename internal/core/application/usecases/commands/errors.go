package commands

import (
	"errors"

	"fixit/internal/pkg/errs"
)

// ErrInvalidCredentials is the single answer to a failed login. It does not
// tell an unknown email from a wrong password or a deactivated account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrResetLinkIsInvalid is returned for any reset token the store does not
// accept and for tokens whose account is gone.
var ErrResetLinkIsInvalid = errors.New("invalid reset link")

// asInvalidReference turns a missing referenced object into a validation
// error on the referencing field, the way a bad foreign key in a request
// body is reported.
func asInvalidReference(paramName string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return err
}
