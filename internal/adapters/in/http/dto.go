package http

import (
	"time"

	"fixit/internal/core/domain/model/address"
	"fixit/internal/core/domain/model/complaint"
	"fixit/internal/core/domain/model/offer"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/model/rating"
	"fixit/internal/core/domain/model/user"

	"github.com/oapi-codegen/runtime/types"
)

// Requests. Shape checks live in the validate tags; business rules stay in
// the domain.

type NewUser struct {
	Email          string      `json:"email"           validate:"required,email"`
	Password       string      `json:"password"        validate:"required"`
	FirstName      string      `json:"first_name"      validate:"required,max=45"`
	LastName       string      `json:"last_name"       validate:"required,max=45"`
	BirthDate      *types.Date `json:"birth_date"`
	Gender         *int        `json:"gender"          validate:"omitempty,oneof=1 2"`
	Phone          *string     `json:"phone"           validate:"omitempty,max=45"`
	Photo          *string     `json:"photo"`
	WorkExperience *int        `json:"work_experience" validate:"omitempty,min=0"`
	UserType       int         `json:"user_type"       validate:"required"`
}

type UserUpdate struct {
	Email          *string     `json:"email"           validate:"omitempty,email"`
	Password       *string     `json:"password"        validate:"omitempty,min=1"`
	FirstName      *string     `json:"first_name"      validate:"omitempty,max=45"`
	LastName       *string     `json:"last_name"       validate:"omitempty,max=45"`
	BirthDate      *types.Date `json:"birth_date"`
	Gender         *int        `json:"gender"          validate:"omitempty,oneof=1 2"`
	Phone          *string     `json:"phone"           validate:"omitempty,max=45"`
	Photo          *string     `json:"photo"`
	WorkExperience *int        `json:"work_experience" validate:"omitempty,min=0"`
}

type NewCity struct {
	Name string `json:"name" validate:"required,max=100"`
}

type NewAddress struct {
	Address     string `json:"address"      validate:"required,max=45"`
	GPSPosition string `json:"gps_position" validate:"required"`
	City        string `json:"city"         validate:"required,uuid"`
}

type AddressUpdate struct {
	Address     *string `json:"address"      validate:"omitempty,max=45"`
	GPSPosition *string `json:"gps_position"`
	City        *string `json:"city"         validate:"omitempty,uuid"`
}

type NewOrder struct {
	Notes      *string `json:"notes"       validate:"omitempty,max=200"`
	Photo      *string `json:"photo"`
	ShortVideo *string `json:"short_video"`
	Budget     float64 `json:"budget"      validate:"min=0"`
	Address    string  `json:"address"     validate:"required,uuid"`
}

// OrderUpdate is decoded after the raw field names were collected, so status
// arrives here already checked to be an integer.
type OrderUpdate struct {
	Notes      *string  `json:"notes"       validate:"omitempty,max=200"`
	Photo      *string  `json:"photo"`
	ShortVideo *string  `json:"short_video"`
	Budget     *float64 `json:"budget"      validate:"omitempty,min=0"`
	Address    *string  `json:"address"     validate:"omitempty,uuid"`
}

type NewOffer struct {
	Order        string     `json:"order"          validate:"required,uuid"`
	Price        float64    `json:"price"          validate:"min=0"`
	CompanyPaid  bool       `json:"company_paid"`
	Notes        *string    `json:"notes"          validate:"omitempty,max=200"`
	LastTimeDate *time.Time `json:"last_time_date"`
	ExpectedDate *time.Time `json:"expected_date"`
}

type OfferUpdate struct {
	Status       *int       `json:"status"`
	IsAccept     *bool      `json:"is_accept"`
	Price        *float64   `json:"price"          validate:"omitempty,min=0"`
	CompanyPaid  *bool      `json:"company_paid"`
	Notes        *string    `json:"notes"          validate:"omitempty,max=200"`
	LastTimeDate *time.Time `json:"last_time_date"`
	ExpectedDate *time.Time `json:"expected_date"`
}

type NewComplaint struct {
	Type    int    `json:"type"    validate:"required"`
	Message string `json:"message" validate:"required,max=500"`
}

type NewRating struct {
	Rate  int     `json:"rate"  validate:"required"`
	Note  *string `json:"note"  validate:"omitempty,max=200"`
	Order string  `json:"order" validate:"required,uuid"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordRequest leaves new_password unvalidated here: an invalid link
// must be reported before a missing password.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// Responses.

type Detail struct {
	Detail string `json:"detail"`
}

type User struct {
	ID             string      `json:"id"`
	Email          string      `json:"email"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	BirthDate      *types.Date `json:"birth_date"`
	Gender         *int        `json:"gender"`
	Phone          *string     `json:"phone"`
	Photo          *string     `json:"photo"`
	WorkExperience *int        `json:"work_experience"`
	UserType       int         `json:"user_type"`
	DateJoined     time.Time   `json:"date_joined"`
	IsDeleted      bool        `json:"is_deleted"`
	DeletedAt      *time.Time  `json:"deleted_at"`
}

type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Address struct {
	ID          string `json:"id"`
	Address     string `json:"address"`
	GPSPosition string `json:"gps_position"`
	City        string `json:"city"`
	User        string `json:"user"`
}

type Order struct {
	ID          string    `json:"id"`
	Status      int       `json:"status"`
	Notes       *string   `json:"notes"`
	Photo       *string   `json:"photo"`
	ShortVideo  *string   `json:"short_video"`
	Budget      float64   `json:"budget"`
	CreatedDate time.Time `json:"created_date"`
	Address     string    `json:"address"`
	Customer    string    `json:"customer"`
}

type Offer struct {
	ID           string     `json:"id"`
	Status       int        `json:"status"`
	IsAccept     bool       `json:"is_accept"`
	Price        float64    `json:"price"`
	CompanyPaid  bool       `json:"company_paid"`
	Notes        *string    `json:"notes"`
	LastTimeDate *time.Time `json:"last_time_date"`
	ExpectedDate *time.Time `json:"expected_date"`
	Order        string     `json:"order"`
	Worker       string     `json:"worker"`
	CreatedAt    time.Time  `json:"created_at"`
}

type Complaint struct {
	ID        string    `json:"id"`
	Type      int       `json:"type"`
	Message   string    `json:"message"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

type Rating struct {
	ID        string    `json:"id"`
	Rate      int       `json:"rate"`
	Note      *string   `json:"note"`
	Order     string    `json:"order"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Detail    string    `json:"detail"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	UserType  int       `json:"user_type"`
}

func toUser(u *user.User) User {
	p := u.Profile()
	resp := User{
		ID:             u.ID().String(),
		Email:          u.Email(),
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Phone:          p.Phone,
		Photo:          p.Photo,
		WorkExperience: p.WorkExperience,
		UserType:       int(u.Role()),
		DateJoined:     u.DateJoined(),
		IsDeleted:      u.IsDeleted(),
		DeletedAt:      u.DeletedAt(),
	}
	if p.BirthDate != nil {
		resp.BirthDate = &types.Date{Time: *p.BirthDate}
	}
	if p.Gender != nil {
		g := int(*p.Gender)
		resp.Gender = &g
	}
	return resp
}

func toCity(c *address.City) City {
	return City{ID: c.ID().String(), Name: c.Name()}
}

func toAddress(a *address.Address) Address {
	return Address{
		ID:          a.ID().String(),
		Address:     a.Line(),
		GPSPosition: a.GPS().String(),
		City:        a.CityID().String(),
		User:        a.OwnerID().String(),
	}
}

func toOrder(o *order.Order) Order {
	d := o.Details()
	return Order{
		ID:          o.ID().String(),
		Status:      int(o.Status()),
		Notes:       d.Notes,
		Photo:       d.Photo,
		ShortVideo:  d.ShortVideo,
		Budget:      d.Budget,
		CreatedDate: o.CreatedDate(),
		Address:     o.AddressID().String(),
		Customer:    o.CustomerID().String(),
	}
}

func toOffer(o *offer.Offer) Offer {
	t := o.Terms()
	return Offer{
		ID:           o.ID().String(),
		Status:       int(o.Status()),
		IsAccept:     o.IsAccept(),
		Price:        t.Price,
		CompanyPaid:  t.CompanyPaid,
		Notes:        t.Notes,
		LastTimeDate: t.LastTimeDate,
		ExpectedDate: t.ExpectedDate,
		Order:        o.OrderID().String(),
		Worker:       o.WorkerID().String(),
		CreatedAt:    o.CreatedAt(),
	}
}

func toComplaint(c *complaint.Complaint) Complaint {
	return Complaint{
		ID:        c.ID().String(),
		Type:      int(c.Type()),
		Message:   c.Message(),
		User:      c.AuthorID().String(),
		CreatedAt: c.CreatedAt(),
	}
}

func toRating(r *rating.Rating) Rating {
	return Rating{
		ID:        r.ID().String(),
		Rate:      r.Rate(),
		Note:      r.Note(),
		Order:     r.OrderID().String(),
		User:      r.AuthorID().String(),
		CreatedAt: r.CreatedAt(),
	}
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}
