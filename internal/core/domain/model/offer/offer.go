package offer

import (
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/pkg/errs"
)

const NotesMaxLength = 200

var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")

// Terms are the worker-supplied conditions of an offer.
type Terms struct {
	Price        float64
	CompanyPaid  bool
	Notes        *string
	LastTimeDate *time.Time
	ExpectedDate *time.Time
}

// Offer is a bid of one worker on one order.
type Offer struct {
	id        kernel.UUID
	orderID   kernel.UUID
	workerID  kernel.UUID
	status    Status
	isAccept  bool
	terms     Terms
	createdAt time.Time

	isConstructed bool
}

// NewOffer creates a Pending offer. workerID must come from the caller's
// identity, never from the request payload.
func NewOffer(id, orderID, workerID kernel.UUID, terms Terms, now time.Time) (*Offer, error) {
	o := &Offer{
		status:        Pending,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrder(orderID),
		o.setWorker(workerID),
		o.setTerms(terms),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOffer rebuilds an offer from persistence.
func RestoreOffer(
	id, orderID, workerID kernel.UUID,
	status Status,
	isAccept bool,
	terms Terms,
	createdAt time.Time,
) (*Offer, error) {
	o, err := NewOffer(id, orderID, workerID, terms, createdAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	o.isAccept = isAccept
	return o, nil
}

func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

func (o *Offer) ID() kernel.UUID {
	return o.id
}

func (o *Offer) OrderID() kernel.UUID {
	return o.orderID
}

func (o *Offer) WorkerID() kernel.UUID {
	return o.workerID
}

func (o *Offer) Status() Status {
	return o.status
}

func (o *Offer) IsAccept() bool {
	return o.isAccept
}

func (o *Offer) Terms() Terms {
	return o.terms
}

func (o *Offer) CreatedAt() time.Time {
	return o.createdAt
}

// Patch is a partial update of an offer. The order and the worker are fixed.
type Patch struct {
	Status       *Status
	IsAccept     *bool
	Price        *float64
	CompanyPaid  *bool
	Notes        *string
	LastTimeDate *time.Time
	ExpectedDate *time.Time
}

// Apply validates the patch as a whole before assigning anything.
func (o *Offer) Apply(p Patch) error {
	next := *o

	var errList []error
	if p.Status != nil {
		if err := p.Status.Validate(); err != nil {
			errList = append(errList, err)
		}
		next.status = *p.Status
	}
	if p.IsAccept != nil {
		next.isAccept = *p.IsAccept
	}

	terms := o.terms
	if p.Price != nil {
		terms.Price = *p.Price
	}
	if p.CompanyPaid != nil {
		terms.CompanyPaid = *p.CompanyPaid
	}
	if p.Notes != nil {
		if *p.Notes == "" {
			terms.Notes = nil
		} else {
			terms.Notes = p.Notes
		}
	}
	if p.LastTimeDate != nil {
		terms.LastTimeDate = p.LastTimeDate
	}
	if p.ExpectedDate != nil {
		terms.ExpectedDate = p.ExpectedDate
	}
	errList = append(errList, next.setTerms(terms))

	if err := errors.Join(errList...); err != nil {
		return err
	}

	*o = next
	return nil
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	o.orderID = orderID
	return nil
}

func (o *Offer) setWorker(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("worker", err)
	}
	o.workerID = workerID
	return nil
}

func (o *Offer) setTerms(t Terms) error {
	var errList []error

	if math.IsNaN(t.Price) || math.IsInf(t.Price, 0) || t.Price < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%v is not a number greater than or equal to 0", t.Price)))
	}
	if t.Notes != nil && utf8.RuneCountInString(*t.Notes) > NotesMaxLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"notes", utf8.RuneCountInString(*t.Notes), 0, NotesMaxLength))
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}
	o.terms = t
	return nil
}
