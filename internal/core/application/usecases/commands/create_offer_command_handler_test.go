package commands_test

import (
	"testing"
	"time"

	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/offer"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOfferCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	worker := newActor(t, user.Worker)
	o := newOrder(t, kernel.NewUUID(), order.Pending)
	expected := time.Now().Add(48 * time.Hour)

	cmd, err := commands.NewCreateOfferCommand(worker, kernel.NewUUID(), o.ID(), offer.Terms{
		Price:        120,
		CompanyPaid:  true,
		ExpectedDate: &expected,
	})
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	offers := new(MockOfferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("OfferRepository").Return(offers).Once(),
		offers.On("Add", mock.Anything, mock.AnythingOfType("*offer.Offer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOfferCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, worker.ID(), got.WorkerID())
	assert.Equal(t, offer.Pending, got.Status())
	assert.False(t, got.IsAccept())
	uow.AssertExpectations(t)
	offers.AssertExpectations(t)
}

func TestCreateOfferCommandHandler_Handle_OnlyWorkers(t *testing.T) {
	for _, actor := range []user.Actor{user.Anonymous(), newActor(t, user.Customer), newActor(t, user.Admin)} {
		cmd, err := commands.NewCreateOfferCommand(actor, kernel.NewUUID(), kernel.NewUUID(), offer.Terms{Price: 1})
		require.NoError(t, err)

		factory := new(MockOfferUoWFactory)
		h := commands.NewCreateOfferCommandHandler(factory)
		_, err = h.Handle(t.Context(), cmd)
		require.Error(t, err)
		factory.AssertNotCalled(t, "Create")
	}
}

func TestCreateOfferCommandHandler_Handle_MissingOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOfferCommand(newActor(t, user.Worker), kernel.NewUUID(), orderID, offer.Terms{})
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	orders.On("Get", mock.Anything, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()
	offers := new(MockOfferRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOfferCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	offers.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
