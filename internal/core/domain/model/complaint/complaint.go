// Package complaint provides the Complaint entity. A complaint is filed by
// any authenticated user; its author is always the caller.
package complaint

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/pkg/errs"
)

const MessageMaxLength = 500

var ErrComplaintIsNotConstructed = errors.New("Complaint must be created via NewComplaint constructor")

type Type int

const (
	Unknown Type = iota
	ServiceQuality
	Professionalism
	PaymentIssue
	Other
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		ServiceQuality:  "Service Quality",
		Professionalism: "Professionalism",
		PaymentIssue:    "Payment Issue",
		Other:           "Other",
	}
}

func ParseType(code int) (Type, error) {
	t := Type(code)
	if err := t.Validate(); err != nil {
		return Unknown, err
	}
	return t, nil
}

func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid complaint type", t))
	}
	return nil
}

func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

type Complaint struct {
	id        kernel.UUID
	kind      Type
	message   string
	authorID  kernel.UUID
	createdAt time.Time

	isConstructed bool
}

func NewComplaint(id kernel.UUID, kind Type, message string, authorID kernel.UUID, now time.Time) (*Complaint, error) {
	c := &Complaint{createdAt: now.UTC(), isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setType(kind),
		c.setMessage(message),
		c.setAuthor(authorID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Complaint) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrComplaintIsNotConstructed
	}
	return nil
}

func (c *Complaint) ID() kernel.UUID {
	return c.id
}

func (c *Complaint) Type() Type {
	return c.kind
}

func (c *Complaint) Message() string {
	return c.message
}

func (c *Complaint) AuthorID() kernel.UUID {
	return c.authorID
}

func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Complaint) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Complaint) setType(kind Type) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *Complaint) setMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.NewValueIsRequiredError("message")
	}
	if n := utf8.RuneCountInString(message); n > MessageMaxLength {
		return errs.NewValueIsOutOfRangeError("message", n, 1, MessageMaxLength)
	}
	c.message = message
	return nil
}

func (c *Complaint) setAuthor(authorID kernel.UUID) error {
	if err := authorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	c.authorID = authorID
	return nil
}
