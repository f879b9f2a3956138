package commands_test

import (
	"errors"
	"testing"

	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateUserCommand(t *testing.T, actor user.Actor, password string, role user.Role) commands.CreateUserCommand {
	t.Helper()
	cmd, err := commands.NewCreateUserCommand(
		actor,
		kernel.NewUUID(),
		"Ann@Example.COM",
		password,
		user.Profile{FirstName: "Ann", LastName: "Lee"},
		role,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateUserCommand(t, user.Anonymous(), "secret", user.Customer)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "secret").Return("hashed", nil).Once()

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher)
	u, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Ann@example.com", u.Email())
	assert.Equal(t, "hashed", u.PasswordHash())
	assert.Equal(t, user.Customer, u.Role())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestCreateUserCommandHandler_Handle_RoleGate(t *testing.T) {
	tests := []struct {
		name  string
		actor user.Role
		role  user.Role
	}{
		{"should reject admin accounts from anonymous callers", user.RoleNone, user.Admin},
		{"should reject admin accounts even from admins", user.Admin, user.Admin},
		{"should reject technical support accounts from customers", user.Customer, user.TechnicalSupport},
		{"should reject technical support accounts from anonymous callers", user.RoleNone, user.TechnicalSupport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := user.Anonymous()
			if tt.actor != user.RoleNone {
				actor = newActor(t, tt.actor)
			}
			cmd := newCreateUserCommand(t, actor, "secret", tt.role)

			factory := new(MockUserUoWFactory)
			hasher := new(MockPasswordHasher)
			h := commands.NewCreateUserCommandHandler(factory, hasher)

			_, err := h.Handle(t.Context(), cmd)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrForbidden)
			factory.AssertNotCalled(t, "Create")
			hasher.AssertNotCalled(t, "Hash", mock.Anything)
		})
	}
}

func TestCreateUserCommandHandler_Handle_AdminCreatesTechnicalSupport(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateUserCommand(t, newActor(t, user.Admin), "secret", user.TechnicalSupport)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "secret").Return("hashed", nil).Once()

	repo := new(MockUserRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher)
	u, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, user.TechnicalSupport, u.Role())
}

func TestCreateUserCommandHandler_Handle_EmptyPassword(t *testing.T) {
	cmd := newCreateUserCommand(t, user.Anonymous(), "", user.Worker)

	factory := new(MockUserUoWFactory)
	h := commands.NewCreateUserCommandHandler(factory, new(MockPasswordHasher))

	_, err := h.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateUserCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateUserCommand(t, user.Anonymous(), "secret", user.Customer)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "secret").Return("hashed", nil).Once()

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).
			Return(errs.NewConflictError("email")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateUserCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateUserCommand(t, user.Anonymous(), "secret", user.Customer)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "secret").Return("hashed", nil).Once()

	uow := new(MockUoW)
	factory := new(MockUserUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateUserCommandHandler(factory, hasher)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateUserCommandHandler_Handle_ValidationError(t *testing.T) {
	cmd := commands.CreateUserCommand{}
	h := commands.NewCreateUserCommandHandler(new(MockUserUoWFactory), new(MockPasswordHasher))
	_, err := h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, commands.ErrCreateUserCommandIsNotConstructed)
}
