package address

import (
	"errors"
	"strings"
	"unicode/utf8"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/pkg/errs"
)

const CityNameMaxLength = 100

var ErrCityIsNotConstructed = errors.New("City must be created via NewCity constructor")

// City is a reference entity. Cities are readable by anyone.
type City struct {
	id            kernel.UUID
	name          string
	isConstructed bool
}

func NewCity(id kernel.UUID, name string) (*City, error) {
	c := &City{isConstructed: true}

	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *City) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCityIsNotConstructed
	}
	return nil
}

func (c *City) ID() kernel.UUID {
	return c.id
}

func (c *City) Name() string {
	return c.name
}

func (c *City) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *City) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > CityNameMaxLength {
		return errs.NewValueIsOutOfRangeError("name", n, 1, CityNameMaxLength)
	}
	c.name = name
	return nil
}
