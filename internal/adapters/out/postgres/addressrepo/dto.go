// Package addressrepo persists cities and the addresses users register in them.
package addressrepo

import (
	"fixit/internal/core/domain/model/address"
	"fixit/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CityDTO represents the database structure for persisting cities.
type CityDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(100);not null"`
}

// TableName specifies the database table name for cities.
func (CityDTO) TableName() string {
	return "cities"
}

// AddressDTO represents the database structure for persisting addresses.
// The position is kept in its "lat,lng" text form.
type AddressDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Address     string    `gorm:"type:varchar(45);not null"`
	GPSPosition string    `gorm:"column:gps_position;type:varchar(100);not null"`
	CityID      uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

func cityFromDomain(c *address.City) CityDTO {
	return CityDTO{
		ID:   c.ID().Bytes(),
		Name: c.Name(),
	}
}

func cityToDomain(dto CityDTO) (*address.City, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	return address.NewCity(id, dto.Name)
}

func fromDomain(a *address.Address) AddressDTO {
	return AddressDTO{
		ID:          a.ID().Bytes(),
		Address:     a.Line(),
		GPSPosition: a.GPS().String(),
		CityID:      a.CityID().Bytes(),
		UserID:      a.OwnerID().Bytes(),
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	cityID, err := kernel.UUIDFrom(dto.CityID)
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFrom(dto.UserID)
	if err != nil {
		return nil, err
	}

	gps, err := kernel.ParseGPSPosition(dto.GPSPosition)
	if err != nil {
		return nil, err
	}

	return address.NewAddress(id, dto.Address, gps, cityID, ownerID)
}
