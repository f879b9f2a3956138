package queries

import (
	"context"

	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/errs"
)

// GetUserQueryHandler reads one account. It is open to anonymous callers.
type GetUserQueryHandler struct {
	repo   ports.UserRepository
	policy services.AccessPolicy
}

func NewGetUserQueryHandler(repo ports.UserRepository) GetUserQueryHandler {
	return GetUserQueryHandler{repo: repo, policy: services.NewAccessPolicy()}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(query.Actor(), services.AccessRequest{Action: services.ReadUser}); err != nil {
		return nil, err
	}

	u, err := h.repo.Get(ctx, query.UserID())
	if err != nil {
		return nil, err
	}
	if u.IsDeleted() && !query.IncludeDeleted() {
		return nil, errs.NewObjectNotFoundError("user", query.UserID())
	}

	return u, nil
}
