package queries

import (
	"context"
	"errors"

	"fixit/internal/core/domain/model/complaint"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/rating"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/guard"
)

var (
	ErrListFeedbackQueryIsNotConstructed = errors.New(
		"ListFeedbackQuery must be created via NewListFeedbackQuery constructor",
	)
	ErrGetFeedbackQueryIsNotConstructed = errors.New(
		"GetFeedbackQuery must be created via NewGetFeedbackQuery constructor",
	)
)

// ListFeedbackQuery lists complaints or ratings. Neither listing takes
// filters; rows come oldest first.
type ListFeedbackQuery struct {
	actor user.Actor
	guard guard.ConstructorGuard
}

func NewListFeedbackQuery(actor user.Actor) ListFeedbackQuery {
	return ListFeedbackQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListFeedbackQuery) Validate() error {
	return q.guard.Validate(ErrListFeedbackQueryIsNotConstructed)
}

// GetFeedbackQuery reads one complaint or rating by id.
type GetFeedbackQuery struct {
	actor user.Actor
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetFeedbackQuery(actor user.Actor, id kernel.UUID) (GetFeedbackQuery, error) {
	if err := id.Validate(); err != nil {
		return GetFeedbackQuery{}, err
	}
	return GetFeedbackQuery{actor: actor, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetFeedbackQuery) Validate() error {
	return q.guard.Validate(ErrGetFeedbackQueryIsNotConstructed)
}

// ComplaintQueryHandler: authors see their own complaints, admins all of them.
type ComplaintQueryHandler struct {
	repo   ports.ComplaintRepository
	policy services.AccessPolicy
}

func NewComplaintQueryHandler(repo ports.ComplaintRepository) ComplaintQueryHandler {
	return ComplaintQueryHandler{repo: repo, policy: services.NewAccessPolicy()}
}

func (h ComplaintQueryHandler) List(ctx context.Context, query ListFeedbackQuery) ([]*complaint.Complaint, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.AccessRequest{Action: services.ListComplaints}); err != nil {
		return nil, err
	}
	return h.repo.List(ctx, services.ComplaintVisibility(query.actor))
}

func (h ComplaintQueryHandler) Get(ctx context.Context, query GetFeedbackQuery) (*complaint.Complaint, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.AccessRequest{Action: services.ReadComplaint}); err != nil {
		return nil, err
	}
	return h.repo.GetVisible(ctx, query.id, services.ComplaintVisibility(query.actor))
}

// RatingQueryHandler: a caller sees ratings on their orders and ratings
// they wrote.
type RatingQueryHandler struct {
	repo   ports.RatingRepository
	policy services.AccessPolicy
}

func NewRatingQueryHandler(repo ports.RatingRepository) RatingQueryHandler {
	return RatingQueryHandler{repo: repo, policy: services.NewAccessPolicy()}
}

func (h RatingQueryHandler) List(ctx context.Context, query ListFeedbackQuery) ([]*rating.Rating, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.AccessRequest{Action: services.ListRatings}); err != nil {
		return nil, err
	}
	return h.repo.List(ctx, services.RatingVisibility(query.actor))
}

func (h RatingQueryHandler) Get(ctx context.Context, query GetFeedbackQuery) (*rating.Rating, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.actor, services.AccessRequest{Action: services.ReadRating}); err != nil {
		return nil, err
	}
	return h.repo.GetVisible(ctx, query.id, services.RatingVisibility(query.actor))
}
