// Package rating provides the Rating entity. Only completed orders can be rated.
package rating

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/pkg/errs"
)

const (
	RateMin       = 1
	RateMax       = 5
	NoteMaxLength = 200
)

var (
	ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

	// ErrOrderNotCompleted is the cause attached when the rated order is not Completed.
	ErrOrderNotCompleted = errors.New("only completed orders can be rated")
)

type Rating struct {
	id        kernel.UUID
	rate      int
	note      *string
	orderID   kernel.UUID
	authorID  kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewRating creates a rating for the order identified by orderID. orderStatus is
// the order's status read at write time; anything but Completed is rejected.
func NewRating(
	id kernel.UUID,
	rate int,
	note *string,
	orderID kernel.UUID,
	orderStatus order.Status,
	authorID kernel.UUID,
	now time.Time,
) (*Rating, error) {
	r, err := build(id, rate, note, orderID, authorID, now)
	if err != nil {
		return nil, err
	}
	if orderStatus != order.Completed {
		return nil, errs.NewValueIsInvalidErrorWithCause("order", ErrOrderNotCompleted)
	}
	return r, nil
}

// RestoreRating rebuilds a rating from persistence without the order gate.
func RestoreRating(
	id kernel.UUID,
	rate int,
	note *string,
	orderID, authorID kernel.UUID,
	createdAt time.Time,
) (*Rating, error) {
	return build(id, rate, note, orderID, authorID, createdAt)
}

func build(id kernel.UUID, rate int, note *string, orderID, authorID kernel.UUID, createdAt time.Time) (*Rating, error) {
	r := &Rating{createdAt: createdAt.UTC(), isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setRate(rate),
		r.setNote(note),
		r.setOrder(orderID),
		r.setAuthor(authorID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

func (r *Rating) ID() kernel.UUID {
	return r.id
}

func (r *Rating) Rate() int {
	return r.rate
}

func (r *Rating) Note() *string {
	return r.note
}

func (r *Rating) OrderID() kernel.UUID {
	return r.orderID
}

func (r *Rating) AuthorID() kernel.UUID {
	return r.authorID
}

func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setRate(rate int) error {
	if rate < RateMin || rate > RateMax {
		return errs.NewValueIsOutOfRangeError("rate", rate, RateMin, RateMax)
	}
	r.rate = rate
	return nil
}

func (r *Rating) setNote(note *string) error {
	if note != nil && utf8.RuneCountInString(*note) > NoteMaxLength {
		return errs.NewValueIsOutOfRangeError("note", utf8.RuneCountInString(*note), 0, NoteMaxLength)
	}
	r.note = note
	return nil
}

func (r *Rating) setOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", fmt.Errorf("rated order: %w", err))
	}
	r.orderID = orderID
	return nil
}

func (r *Rating) setAuthor(authorID kernel.UUID) error {
	if err := authorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	r.authorID = authorID
	return nil
}
