package user

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/pkg/errs"
)

const (
	NameMaxLength  = 45
	PhoneMaxLength = 45
)

// ErrUserIsNotConstructed is returned when a User was not created via NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// Profile is the user-editable part of a User. Nil pointers mean "not set".
type Profile struct {
	FirstName      string
	LastName       string
	BirthDate      *time.Time
	Gender         *Gender
	Phone          *string
	Photo          *string
	WorkExperience *int
}

// User is an account of the marketplace. Users are soft deleted only.
type User struct {
	id           kernel.UUID
	email        string
	profile      Profile
	role         Role
	passwordHash string
	dateJoined   time.Time
	isDeleted    bool
	deletedAt    *time.Time

	isConstructed bool
}

// NewUser validates a new account. passwordHash is the already hashed password;
// hashing is an infrastructure concern.
func NewUser(id kernel.UUID, email string, profile Profile, role Role, passwordHash string, now time.Time) (*User, error) {
	u := &User{
		dateJoined:    now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setProfile(profile),
		u.setRole(role),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a User from storage.
func RestoreUser(
	id kernel.UUID,
	email string,
	profile Profile,
	role Role,
	passwordHash string,
	dateJoined time.Time,
	isDeleted bool,
	deletedAt *time.Time,
) (*User, error) {
	u, err := NewUser(id, email, profile, role, passwordHash, dateJoined)
	if err != nil {
		return nil, err
	}
	u.isDeleted = isDeleted
	u.deletedAt = deletedAt
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Profile() Profile {
	return u.profile
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) DateJoined() time.Time {
	return u.dateJoined
}

func (u *User) IsDeleted() bool {
	return u.isDeleted
}

// DeletedAt is nil until the first SoftDelete.
func (u *User) DeletedAt() *time.Time {
	return u.deletedAt
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.profile.FirstName + " " + u.profile.LastName)
}

// Actor returns the identity this user acts with once authenticated.
func (u *User) Actor() Actor {
	return Actor{id: u.id, role: u.role, authenticated: true}
}

// ChangeEmail replaces the login email.
func (u *User) ChangeEmail(email string) error {
	return u.setEmail(email)
}

// UpdateProfile replaces the profile. Nothing is assigned unless the whole profile is valid.
func (u *User) UpdateProfile(profile Profile) error {
	return u.setProfile(profile)
}

// ChangePassword stores a new password hash.
func (u *User) ChangePassword(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

// SoftDelete marks the user deleted. Repeating it keeps the first deletion time.
func (u *User) SoftDelete(now time.Time) {
	if u.isDeleted && u.deletedAt != nil {
		return
	}
	t := now.UTC()
	u.isDeleted = true
	u.deletedAt = &t
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	u.email = normalized
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setProfile(p Profile) error {
	if err := validateProfile(p); err != nil {
		return err
	}
	u.profile = p
	return nil
}

func validateProfile(p Profile) error {
	var errList []error

	if strings.TrimSpace(p.FirstName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("first_name"))
	} else if utf8.RuneCountInString(p.FirstName) > NameMaxLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("first_name", utf8.RuneCountInString(p.FirstName), 1, NameMaxLength))
	}
	if strings.TrimSpace(p.LastName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("last_name"))
	} else if utf8.RuneCountInString(p.LastName) > NameMaxLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("last_name", utf8.RuneCountInString(p.LastName), 1, NameMaxLength))
	}
	if p.Gender != nil {
		if err := p.Gender.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if p.Phone != nil && utf8.RuneCountInString(*p.Phone) > PhoneMaxLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("phone", utf8.RuneCountInString(*p.Phone), 0, PhoneMaxLength))
	}
	if p.WorkExperience != nil && *p.WorkExperience < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"work_experience", fmt.Errorf("%d is less than 0", *p.WorkExperience)))
	}

	return errors.Join(errList...)
}

// NormalizeEmail trims the address and lower-cases its domain part.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:]), nil
}
