package order

import (
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/pkg/errs"
)

// NotesMaxLength is the longest notes text an order accepts, in characters.
const NotesMaxLength = 200

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details holds the descriptive, customer-editable part of an order.
// Nil pointers mean "not set".
type Details struct {
	Notes      *string
	Photo      *string
	ShortVideo *string
	Budget     float64
}

// Order is a service request posted by a customer. It is the aggregate root
// of the order lifecycle.
//
// Order follows these invariants:
//   - Must have a valid identifier, customer and address
//   - Budget must not be negative
//   - A new order always starts as Pending
//   - Status changes go through Status.TransitionTo
//   - The created date never changes after construction
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the owner of the order; it never changes
	customerID kernel.UUID

	// addressID is where the work has to be done
	addressID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	details Details

	createdDate time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a Pending order for the given customer.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: The caller creating the order
//   - addressID: The service address (ownership is checked by the caller)
//   - details: Notes, media references and budget
//   - now: Creation time, stored in UTC
//
// Any status the client asked for is ignored: every order starts as Pending.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), actor.ID(), addressID,
//	    order.Details{Budget: 100}, time.Now())
func NewOrder(id, customerID, addressID kernel.UUID, details Details, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdDate:   now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID),
		o.setAddress(addressID),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence, keeping its stored status
// and created date.
func RestoreOrder(
	id, customerID, addressID kernel.UUID,
	status Status,
	details Details,
	createdDate time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, addressID, details, createdDate)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// AddressID returns the service address identifier.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Details returns notes, media references and budget.
func (o *Order) Details() Details {
	return o.details
}

// CreatedDate returns the time the order was posted.
func (o *Order) CreatedDate() time.Time {
	return o.createdDate
}

// ChangeStatus moves the order to target.
//
// Returns:
//   - nil on an allowed transition
//   - error if target is invalid or the edge is rejected (Pending -> Completed)
//
// The stored status is untouched on error.
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// Patch is a partial update of an order. Nil fields are left as they are.
// An empty string clears an optional text field.
type Patch struct {
	Status     *Status
	Notes      *string
	Photo      *string
	ShortVideo *string
	Budget     *float64
	AddressID  *kernel.UUID
}

// Apply validates the whole patch first and only then assigns it, so a
// rejected patch leaves the order unchanged.
//
// A status in the patch goes through the same transition check as ChangeStatus.
func (o *Order) Apply(p Patch) error {
	next := *o

	var errList []error
	if p.Status != nil {
		status, err := o.status.TransitionTo(*p.Status)
		errList = append(errList, err)
		next.status = status
	}
	if p.AddressID != nil {
		errList = append(errList, next.setAddress(*p.AddressID))
	}

	details := o.details
	if p.Notes != nil {
		details.Notes = emptyToNil(*p.Notes)
	}
	if p.Photo != nil {
		details.Photo = emptyToNil(*p.Photo)
	}
	if p.ShortVideo != nil {
		details.ShortVideo = emptyToNil(*p.ShortVideo)
	}
	if p.Budget != nil {
		details.Budget = *p.Budget
	}
	errList = append(errList, next.setDetails(details))

	if err := errors.Join(errList...); err != nil {
		return err
	}

	*o = next
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("address", err)
	}
	o.addressID = addressID
	return nil
}

// setDetails validates and sets notes length and budget.
// Budget must be a finite number not lower than 0.
func (o *Order) setDetails(d Details) error {
	var errList []error

	if d.Notes != nil && utf8.RuneCountInString(*d.Notes) > NotesMaxLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"notes", utf8.RuneCountInString(*d.Notes), 0, NotesMaxLength))
	}
	if math.IsNaN(d.Budget) || math.IsInf(d.Budget, 0) || d.Budget < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"budget", fmt.Errorf("%v is not a number greater than or equal to 0", d.Budget)))
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}
	o.details = d
	return nil
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
