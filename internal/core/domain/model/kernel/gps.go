package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fixit/internal/pkg/errs"
	"fixit/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrGPSPositionIsNotConstructed is returned for zero-value positions.
var ErrGPSPositionIsNotConstructed = errs.NewValueIsRequiredError(
	"gps position must be created via NewGPSPosition or ParseGPSPosition")

// GPSPosition is an immutable latitude/longitude pair.
// It is stored and exchanged in the "lat,lng" text form.
type GPSPosition struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGPSPosition validates both coordinates and returns a position.
// All range violations are reported together.
func NewGPSPosition(lat, lng float64) (GPSPosition, error) {
	pos := GPSPosition{guard: guard.NewConstructorGuard()}

	if err := errors.Join(pos.setLatitude(lat), pos.setLongitude(lng)); err != nil {
		return GPSPosition{}, err
	}

	return pos, nil
}

// ParseGPSPosition reads the "lat,lng" form, tolerating spaces around the values.
func ParseGPSPosition(s string) (GPSPosition, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return GPSPosition{}, errs.NewValueIsInvalidErrorWithCause(
			"gps_position", fmt.Errorf("%q is not in lat,lng form", s))
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err := errors.Join(latErr, lngErr); err != nil {
		return GPSPosition{}, errs.NewValueIsInvalidErrorWithCause("gps_position", err)
	}

	return NewGPSPosition(lat, lng)
}

func (p GPSPosition) Validate() error {
	return p.guard.Validate(ErrGPSPositionIsNotConstructed)
}

func (p GPSPosition) Latitude() float64 {
	return p.lat
}

func (p GPSPosition) Longitude() float64 {
	return p.lng
}

// String renders the position the way ParseGPSPosition reads it.
func (p GPSPosition) String() string {
	return strconv.FormatFloat(p.lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.lng, 'f', -1, 64)
}

// IsEqual compares two constructed positions.
func (p GPSPosition) IsEqual(other GPSPosition) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return p.lat == other.lat && p.lng == other.lng, nil
}

func (p *GPSPosition) setLatitude(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}
	p.lat = lat
	return nil
}

func (p *GPSPosition) setLongitude(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}
	p.lng = lng
	return nil
}
