package commands_test

import (
	"errors"
	"testing"

	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderUoW wires a MockUoW that hands out repo for the loaded order and
// expects the transaction to end with a rollback.
func orderUoW(t *testing.T, repo *MockOrderRepository, o *order.Order) (*MockUoW, *MockOrderUoWFactory) {
	t.Helper()
	ctx := t.Context()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetVisible", mock.Anything, o.ID(), mock.Anything).Return(o, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, user.Customer)
	o := newOrder(t, customer.ID(), order.Pending)
	notes, budget := "call before coming", 250.0

	cmd, err := commands.NewUpdateOrderCommand(customer, o.ID(), order.Patch{
		Notes:  &notes,
		Budget: &budget,
		Status: statusPtr(order.InProgress),
	}, []string{"notes", "budget", "status"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow, factory := orderUoW(t, repo, o)
	repo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.InProgress, got.Status())
	assert.Equal(t, notes, *got.Details().Notes)
	assert.InDelta(t, budget, got.Details().Budget, 0)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_PendingToCompletedIsRejected(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, user.Customer)
	o := newOrder(t, customer.ID(), order.Pending)

	cmd, err := commands.NewUpdateOrderCommand(customer, o.ID(), order.Patch{
		Status: statusPtr(order.Completed),
	}, []string{"status"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow, factory := orderUoW(t, repo, o)

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Pending, o.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateOrderCommandHandler_Handle_CustomerFieldAllowList(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, user.Customer)
	o := newOrder(t, customer.ID(), order.Pending)
	notes := "x"

	cmd, err := commands.NewUpdateOrderCommand(customer, o.ID(), order.Patch{Notes: &notes},
		[]string{"notes", "customer", "address", "customer"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	_, factory := orderUoW(t, repo, o)

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var fieldsErr *errs.FieldsNotAllowedError
	require.ErrorAs(t, err, &fieldsErr)
	assert.Equal(t, []string{"address", "customer"}, fieldsErr.Fields)
	assert.Nil(t, o.Details().Notes)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_AdminIsNotLimitedByAllowList(t *testing.T) {
	ctx := t.Context()
	admin := newActor(t, user.Admin)
	o := newOrder(t, kernel.NewUUID(), order.Pending)
	addressID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderCommand(admin, o.ID(), order.Patch{AddressID: &addressID},
		[]string{"address"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	addresses := new(MockAddressRepository)
	addresses.On("Get", mock.Anything, addressID).Return(newAddress(t, o.CustomerID()), nil).Once()

	uow, factory := orderUoW(t, repo, o)
	uow.On("AddressRepository").Return(addresses).Once()
	repo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, addressID, got.AddressID())
}

func TestUpdateOrderCommandHandler_Handle_MissingAddressIsInvalid(t *testing.T) {
	ctx := t.Context()
	admin := newActor(t, user.Admin)
	o := newOrder(t, kernel.NewUUID(), order.Pending)
	addressID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderCommand(admin, o.ID(), order.Patch{AddressID: &addressID},
		[]string{"address"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	addresses := new(MockAddressRepository)
	addresses.On("Get", mock.Anything, addressID).
		Return(nil, errs.NewObjectNotFoundError("address", addressID)).Once()

	uow, factory := orderUoW(t, repo, o)
	uow.On("AddressRepository").Return(addresses).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_Permissions(t *testing.T) {
	t.Run("should forbid a customer changing another customer's order", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t, kernel.NewUUID(), order.Pending)
		cmd, err := commands.NewUpdateOrderCommand(newActor(t, user.Customer), o.ID(), order.Patch{}, nil)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		_, factory := orderUoW(t, repo, o)

		h := commands.NewUpdateOrderCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrForbidden)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should forbid workers and technical support before loading", func(t *testing.T) {
		for _, role := range []user.Role{user.Worker, user.TechnicalSupport} {
			cmd, err := commands.NewUpdateOrderCommand(newActor(t, role), kernel.NewUUID(), order.Patch{}, nil)
			require.NoError(t, err)

			factory := new(MockOrderUoWFactory)
			h := commands.NewUpdateOrderCommandHandler(factory)
			_, err = h.Handle(t.Context(), cmd)
			require.ErrorIs(t, err, errs.ErrForbidden)
			factory.AssertNotCalled(t, "Create")
		}
	})

	t.Run("should require authentication", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(user.Anonymous(), kernel.NewUUID(), order.Patch{}, nil)
		require.NoError(t, err)

		h := commands.NewUpdateOrderCommandHandler(new(MockOrderUoWFactory))
		_, err = h.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should report an invisible order as not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewUpdateOrderCommand(newActor(t, user.Customer), id, order.Patch{}, nil)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("GetVisible", mock.Anything, id, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("order", id)).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateOrderCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestUpdateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	customer := newActor(t, user.Customer)
	o := newOrder(t, customer.ID(), order.InProgress)

	cmd, err := commands.NewUpdateOrderCommand(customer, o.ID(), order.Patch{
		Status: statusPtr(order.Completed),
	}, []string{"status"})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow, factory := orderUoW(t, repo, o)
	repo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
