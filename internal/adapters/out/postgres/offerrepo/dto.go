// Package offerrepo persists worker offers on orders.
package offerrepo

import (
	"time"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offers.
type OfferDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status       int       `gorm:"type:smallint;not null;index"`
	IsAccept     bool      `gorm:"not null;default:false"`
	Price        float64   `gorm:"not null"`
	CompanyPaid  bool      `gorm:"not null;default:false"`
	Notes        *string   `gorm:"type:varchar(200)"`
	LastTimeDate *time.Time
	ExpectedDate *time.Time
	CreatedAt    time.Time `gorm:"not null"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	WorkerID     uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for offers.
func (OfferDTO) TableName() string {
	return "offers"
}

func fromDomain(o *offer.Offer) OfferDTO {
	t := o.Terms()
	return OfferDTO{
		ID:           o.ID().Bytes(),
		Status:       int(o.Status()),
		IsAccept:     o.IsAccept(),
		Price:        t.Price,
		CompanyPaid:  t.CompanyPaid,
		Notes:        t.Notes,
		LastTimeDate: t.LastTimeDate,
		ExpectedDate: t.ExpectedDate,
		CreatedAt:    o.CreatedAt(),
		OrderID:      o.OrderID().Bytes(),
		WorkerID:     o.WorkerID().Bytes(),
	}
}

func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFrom(dto.OrderID)
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFrom(dto.WorkerID)
	if err != nil {
		return nil, err
	}

	terms := offer.Terms{
		Price:        dto.Price,
		CompanyPaid:  dto.CompanyPaid,
		Notes:        dto.Notes,
		LastTimeDate: dto.LastTimeDate,
		ExpectedDate: dto.ExpectedDate,
	}

	return offer.RestoreOffer(id, orderID, workerID, offer.Status(dto.Status), dto.IsAccept, terms, dto.CreatedAt)
}
