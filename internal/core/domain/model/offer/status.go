package offer

import (
	"fmt"

	"fixit/internal/pkg/errs"
)

// Status is the negotiation state of an offer. Any move between valid
// statuses is allowed.
type Status int

const (
	Unknown Status = iota
	Pending
	Accepted
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Accepted: "Accepted",
		Rejected: "Rejected",
	}
}

func ParseStatus(code int) (Status, error) {
	s := Status(code)
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return s, nil
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid offer status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
