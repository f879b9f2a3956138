// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer and status, the two columns every role-scoped listing filters on.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status      int       `gorm:"type:smallint;not null;index"`
	Notes       *string   `gorm:"type:varchar(200)"`
	Photo       *string   `gorm:"type:text"`
	ShortVideo  *string   `gorm:"type:text"`
	Budget      float64   `gorm:"not null"`
	CreatedDate time.Time `gorm:"not null;index"`
	AddressID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()
	return OrderDTO{
		ID:          o.ID().Bytes(),
		Status:      int(o.Status()),
		Notes:       d.Notes,
		Photo:       d.Photo,
		ShortVideo:  d.ShortVideo,
		Budget:      d.Budget,
		CreatedDate: o.CreatedDate(),
		AddressID:   o.AddressID().Bytes(),
		CustomerID:  o.CustomerID().Bytes(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the stored status and created date using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFrom(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFrom(dto.AddressID)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		Notes:      dto.Notes,
		Photo:      dto.Photo,
		ShortVideo: dto.ShortVideo,
		Budget:     dto.Budget,
	}

	return order.RestoreOrder(id, customerID, addressID, order.Status(dto.Status), details, dto.CreatedDate)
}
