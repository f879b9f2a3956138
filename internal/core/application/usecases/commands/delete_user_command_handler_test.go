package commands_test

import (
	"testing"
	"time"

	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteUserCommandHandler_Handle(t *testing.T) {
	t.Run("should mark the user deleted", func(t *testing.T) {
		ctx := t.Context()
		target := newUser(t, user.Customer)
		cmd, err := commands.NewDeleteUserCommand(newActor(t, user.Admin), target.ID(), false)
		require.NoError(t, err)

		repo := new(MockUserRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(repo).Once(),
			repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
			repo.On("Update", mock.Anything, target).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteUserCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		assert.True(t, target.IsDeleted())
		require.NotNil(t, target.DeletedAt())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should keep the first deletion time on a repeated delete", func(t *testing.T) {
		ctx := t.Context()
		target := newUser(t, user.Customer)
		first := time.Now().Add(-time.Hour).UTC()
		target.SoftDelete(first)

		cmd, err := commands.NewDeleteUserCommand(newActor(t, user.Admin), target.ID(), true)
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once()
		repo.On("Update", mock.Anything, target).Return(nil).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(repo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteUserCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		assert.True(t, target.IsDeleted())
		assert.Equal(t, first, *target.DeletedAt())
	})

	t.Run("should report an already deleted user as not found without the opt-in", func(t *testing.T) {
		ctx := t.Context()
		target := newUser(t, user.Customer)
		target.SoftDelete(time.Now())

		cmd, err := commands.NewDeleteUserCommand(newActor(t, user.Admin), target.ID(), false)
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockUserUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteUserCommandHandler(factory)
		err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should require an authenticated caller", func(t *testing.T) {
		cmd, err := commands.NewDeleteUserCommand(user.Anonymous(), newUser(t, user.Customer).ID(), false)
		require.NoError(t, err)

		factory := new(MockUserUoWFactory)
		h := commands.NewDeleteUserCommandHandler(factory)
		err = h.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
		factory.AssertNotCalled(t, "Create")
	})
}
