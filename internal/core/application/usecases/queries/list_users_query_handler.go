package queries

import (
	"context"

	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
)

type ListUsersQueryHandler struct {
	repo   ports.UserRepository
	policy services.AccessPolicy
}

func NewListUsersQueryHandler(repo ports.UserRepository) ListUsersQueryHandler {
	return ListUsersQueryHandler{repo: repo, policy: services.NewAccessPolicy()}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(query.Actor(), services.AccessRequest{Action: services.ListUsers}); err != nil {
		return nil, err
	}

	return h.repo.List(ctx, query.Filter())
}
