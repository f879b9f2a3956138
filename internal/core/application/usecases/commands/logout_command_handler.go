package commands

import (
	"context"

	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
)

type LogoutCommandHandler struct {
	denylist ports.TokenDenylist
	policy   services.AccessPolicy
}

func NewLogoutCommandHandler(denylist ports.TokenDenylist) LogoutCommandHandler {
	return LogoutCommandHandler{denylist: denylist, policy: services.NewAccessPolicy()}
}

func (h *LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.AccessRequest{Action: services.Logout}); err != nil {
		return err
	}

	return h.denylist.Revoke(ctx, cmd.TokenID(), cmd.ExpiresAt())
}
