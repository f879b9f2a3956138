// Package userrepo persists user accounts. Users are never physically
// removed: soft deletion is a regular update of is_deleted and deleted_at.
package userrepo

import (
	"time"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// Unique index names, reported as the conflicting field on duplicate writes.
const (
	emailIndex = "uq_users_email"
	phoneIndex = "uq_users_phone"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email          string     `gorm:"type:varchar(254);not null;uniqueIndex:uq_users_email"`
	FirstName      string     `gorm:"type:varchar(45);not null"`
	LastName       string     `gorm:"type:varchar(45);not null"`
	BirthDate      *time.Time `gorm:"type:date"`
	Gender         *int       `gorm:"type:smallint"`
	Phone          *string    `gorm:"type:varchar(45);uniqueIndex:uq_users_phone"`
	Photo          *string    `gorm:"type:text"`
	WorkExperience *int
	UserType       int        `gorm:"type:smallint;not null;index"`
	PasswordHash   string     `gorm:"type:varchar(255);not null"`
	DateJoined     time.Time  `gorm:"not null"`
	IsDeleted      bool       `gorm:"not null;default:false;index"`
	DeletedAt      *time.Time
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	p := u.Profile()

	var gender *int
	if p.Gender != nil {
		g := int(*p.Gender)
		gender = &g
	}

	return UserDTO{
		ID:             u.ID().Bytes(),
		Email:          u.Email(),
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		BirthDate:      p.BirthDate,
		Gender:         gender,
		Phone:          p.Phone,
		Photo:          p.Photo,
		WorkExperience: p.WorkExperience,
		UserType:       int(u.Role()),
		PasswordHash:   u.PasswordHash(),
		DateJoined:     u.DateJoined(),
		IsDeleted:      u.IsDeleted(),
		DeletedAt:      u.DeletedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.UserType)
	if err != nil {
		return nil, err
	}

	var gender *user.Gender
	if dto.Gender != nil {
		g := user.Gender(*dto.Gender)
		gender = &g
	}

	profile := user.Profile{
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		BirthDate:      dto.BirthDate,
		Gender:         gender,
		Phone:          dto.Phone,
		Photo:          dto.Photo,
		WorkExperience: dto.WorkExperience,
	}

	return user.RestoreUser(id, dto.Email, profile, role, dto.PasswordHash, dto.DateJoined, dto.IsDeleted, dto.DeletedAt)
}
