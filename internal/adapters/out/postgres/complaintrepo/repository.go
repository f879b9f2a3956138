package complaintrepo

import (
	"context"
	"errors"

	"fixit/internal/adapters/out/postgres/pgutil"
	"fixit/internal/core/domain/model/complaint"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/services"
	"fixit/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type GormComplaintRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormComplaintRepository(db *gorm.DB, tracker aggregateTracker) *GormComplaintRepository {
	return &GormComplaintRepository{db: db, tracker: tracker}
}

func (r *GormComplaintRepository) Add(ctx context.Context, aggregate *complaint.Complaint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormComplaintRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ComplaintDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("complaint", id.String())
	}
	return nil
}

func (r *GormComplaintRepository) GetVisible(
	ctx context.Context,
	id kernel.UUID,
	visibility services.Visibility,
) (*complaint.Complaint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ComplaintDTO
	q := scope(r.db.WithContext(ctx), visibility)
	if err := q.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("complaint", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns the visible complaints, oldest first.
func (r *GormComplaintRepository) List(
	ctx context.Context,
	visibility services.Visibility,
) ([]*complaint.Complaint, error) {
	var dtos []ComplaintDTO
	q := scope(r.db.WithContext(ctx).Model(&ComplaintDTO{}), visibility)
	if err := q.Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	complaints := make([]*complaint.Complaint, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}

	return complaints, nil
}

func scope(q *gorm.DB, visibility services.Visibility) *gorm.DB {
	switch visibility.Kind {
	case services.VisibleToAll:
		return q
	case services.VisibleToOwner:
		return q.Where("user_id = ?", visibility.UserID.Bytes())
	default:
		return pgutil.Nothing(q)
	}
}
