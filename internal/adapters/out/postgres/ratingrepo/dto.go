// Package ratingrepo persists ratings left on completed orders.
package ratingrepo

import (
	"time"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

type RatingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Rate      int       `gorm:"type:smallint;not null"`
	Note      *string   `gorm:"type:varchar(200)"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(r *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:        r.ID().Bytes(),
		Rate:      r.Rate(),
		Note:      r.Note(),
		OrderID:   r.OrderID().Bytes(),
		UserID:    r.AuthorID().Bytes(),
		CreatedAt: r.CreatedAt(),
	}
}

// toDomain skips the completed-order gate: it held when the rating was written.
func toDomain(dto RatingDTO) (*rating.Rating, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFrom(dto.OrderID)
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFrom(dto.UserID)
	if err != nil {
		return nil, err
	}

	return rating.RestoreRating(id, dto.Rate, dto.Note, orderID, authorID, dto.CreatedAt)
}
