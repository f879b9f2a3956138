package address

import (
	"errors"
	"strings"
	"unicode/utf8"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/pkg/errs"
)

const LineMaxLength = 45

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a user-owned service location. The owner is always the caller
// that created it and never changes.
type Address struct {
	id            kernel.UUID
	line          string
	gps           kernel.GPSPosition
	cityID        kernel.UUID
	ownerID       kernel.UUID
	isConstructed bool
}

func NewAddress(id kernel.UUID, line string, gps kernel.GPSPosition, cityID, ownerID kernel.UUID) (*Address, error) {
	a := &Address{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setLine(line),
		a.setGPS(gps),
		a.setCity(cityID),
		a.setOwner(ownerID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) ID() kernel.UUID {
	return a.id
}

func (a *Address) Line() string {
	return a.line
}

func (a *Address) GPS() kernel.GPSPosition {
	return a.gps
}

func (a *Address) CityID() kernel.UUID {
	return a.cityID
}

func (a *Address) OwnerID() kernel.UUID {
	return a.ownerID
}

// Change replaces the mutable fields in one step; nothing is assigned on error.
func (a *Address) Change(line string, gps kernel.GPSPosition, cityID kernel.UUID) error {
	next := *a
	if err := errors.Join(next.setLine(line), next.setGPS(gps), next.setCity(cityID)); err != nil {
		return err
	}
	*a = next
	return nil
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if n := utf8.RuneCountInString(line); n > LineMaxLength {
		return errs.NewValueIsOutOfRangeError("address", n, 1, LineMaxLength)
	}
	a.line = line
	return nil
}

func (a *Address) setGPS(gps kernel.GPSPosition) error {
	if err := gps.Validate(); err != nil {
		return err
	}
	a.gps = gps
	return nil
}

func (a *Address) setCity(cityID kernel.UUID) error {
	if err := cityID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("city", err)
	}
	a.cityID = cityID
	return nil
}

func (a *Address) setOwner(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	a.ownerID = ownerID
	return nil
}
