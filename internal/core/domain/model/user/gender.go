package user

import (
	"fmt"

	"fixit/internal/pkg/errs"
)

// Gender is optional profile data.
type Gender int

const (
	Male   Gender = 1
	Female Gender = 2
)

func (g Gender) Validate() error {
	if g != Male && g != Female {
		return errs.NewValueIsInvalidErrorWithCause("gender", fmt.Errorf("%d is not a valid gender", int(g)))
	}
	return nil
}

func (g Gender) String() string {
	switch g {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return "Unknown"
	}
}
