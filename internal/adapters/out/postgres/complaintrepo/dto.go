// Package complaintrepo persists user complaints.
package complaintrepo

import (
	"time"

	"fixit/internal/core/domain/model/complaint"
	"fixit/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ComplaintDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type      int       `gorm:"type:smallint;not null"`
	Message   string    `gorm:"type:varchar(500);not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ComplaintDTO) TableName() string {
	return "complaints"
}

func fromDomain(c *complaint.Complaint) ComplaintDTO {
	return ComplaintDTO{
		ID:        c.ID().Bytes(),
		Type:      int(c.Type()),
		Message:   c.Message(),
		UserID:    c.AuthorID().Bytes(),
		CreatedAt: c.CreatedAt(),
	}
}

func toDomain(dto ComplaintDTO) (*complaint.Complaint, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFrom(dto.UserID)
	if err != nil {
		return nil, err
	}

	return complaint.NewComplaint(id, complaint.Type(dto.Type), dto.Message, authorID, dto.CreatedAt)
}
