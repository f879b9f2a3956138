package userrepo

import (
	"context"
	"errors"
	"strconv"

	"fixit/internal/adapters/out/postgres/pgutil"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/errs"

	"gorm.io/gorm"
)

var conflictFields = map[string]string{
	emailIndex: "email",
	phoneIndex: "phone",
}

var orderColumns = map[string]string{
	"email":       "users.email",
	"first_name":  "users.first_name",
	"last_name":   "users.last_name",
	"user_type":   "users.user_type",
	"date_joined": "users.date_joined",
}

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.MapWriteError(err, conflictFields)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column so cleared optional fields are stored as NULL.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "date_joined").
		Updates(&dto)
	if result.Error != nil {
		return pgutil.MapWriteError(result.Error, conflictFields)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) List(ctx context.Context, filter ports.UserFilter) ([]*user.User, error) {
	q := r.db.WithContext(ctx).Model(&UserDTO{})

	if !filter.IncludeDeleted {
		q = q.Where("users.is_deleted = ?", false)
	}
	if filter.Email != "" {
		q = q.Where("users.email ILIKE ?", pgutil.Contains(filter.Email))
	}
	if filter.FullName != "" {
		q = q.Where("(users.first_name ILIKE ? OR users.last_name ILIKE ?)",
			pgutil.Contains(filter.FullName), pgutil.Contains(filter.FullName))
	}
	if filter.Role != nil {
		q = q.Where("users.user_type = ?", int(*filter.Role))
	}
	if filter.Gender != nil {
		q = q.Where("users.gender = ?", int(*filter.Gender))
	}
	q = search(q, filter.Search)
	q = pgutil.Order(q, filter.Ordering, orderColumns)

	var dtos []UserDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

// search matches each term against the text columns; a numeric term also
// matches the role code exactly.
func search(q *gorm.DB, text string) *gorm.DB {
	for _, term := range pgutil.Terms(text) {
		cond, args := pgutil.AnyColumnContains(term,
			"users.email", "users.first_name", "users.last_name", "users.phone")
		if code, err := strconv.Atoi(term); err == nil {
			cond = "(" + cond + " OR users.user_type = ?)"
			args = append(args, code)
		}
		q = q.Where(cond, args...)
	}
	return q
}
