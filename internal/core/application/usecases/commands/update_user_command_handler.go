package commands

import (
	"context"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/domain/services"
	"fixit/internal/core/ports"
	"fixit/internal/pkg/errs"
)

type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	policy     services.AccessPolicy
}

func NewUpdateUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.AccessRequest{Action: services.UpdateUser}); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	u, err := loadUser(ctx, repo, cmd.UserID(), cmd.IncludeDeleted())
	if err != nil {
		return nil, err
	}

	if err = h.apply(u, cmd.Patch()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}

func (h *UpdateUserCommandHandler) apply(u *user.User, p UserPatch) error {
	profile := u.Profile()
	if p.FirstName != nil {
		profile.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		profile.LastName = *p.LastName
	}
	if p.BirthDate != nil {
		profile.BirthDate = p.BirthDate
	}
	if p.Gender != nil {
		profile.Gender = p.Gender
	}
	if p.Phone != nil {
		profile.Phone = clearable(*p.Phone)
	}
	if p.Photo != nil {
		profile.Photo = clearable(*p.Photo)
	}
	if p.WorkExperience != nil {
		profile.WorkExperience = p.WorkExperience
	}
	if err := u.UpdateProfile(profile); err != nil {
		return err
	}

	if p.Email != nil {
		if err := u.ChangeEmail(*p.Email); err != nil {
			return err
		}
	}

	if p.Password != nil {
		if *p.Password == "" {
			return errs.NewValueIsRequiredError("password")
		}
		hash, err := h.hasher.Hash(*p.Password)
		if err != nil {
			return err
		}
		if err = u.ChangePassword(hash); err != nil {
			return err
		}
	}

	return nil
}

// loadUser hides soft-deleted users unless the caller opted in.
func loadUser(ctx context.Context, repo ports.UserRepository, id kernel.UUID, includeDeleted bool) (*user.User, error) {
	u, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.IsDeleted() && !includeDeleted {
		return nil, errs.NewObjectNotFoundError("user", id)
	}
	return u, nil
}

func clearable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
