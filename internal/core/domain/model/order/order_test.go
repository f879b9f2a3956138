package order_test

import (
	"strings"
	"testing"
	"time"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.Details{Budget: 100}, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	id, customerID, addressID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("should create pending order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, addressID, order.Details{Budget: 100, Notes: ptr("fix sink")}, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.AddressID().IsEqual(addressID))
		assert.Equal(t, order.Pending, o.Status())
		assert.InDelta(t, 100.0, o.Details().Budget, 0)
		assert.Equal(t, now, o.CreatedDate())
	})

	t.Run("should fail with negative budget", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, addressID, order.Details{Budget: -1}, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "budget")
	})

	t.Run("should fail with long notes", func(t *testing.T) {
		notes := strings.Repeat("n", order.NotesMaxLength+1)

		_, err := order.NewOrder(id, customerID, addressID, order.Details{Notes: &notes}, now)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var zero kernel.UUID

		o, err := order.NewOrder(zero, zero, zero, order.Details{Budget: -5}, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customer")
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "budget")
	})
}

func TestRestoreOrder(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should keep stored status and date", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Cancelled, order.Details{Budget: 10}, created)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, created, o.CreatedDate())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Unknown, order.Details{}, created)

		assert.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should reject pending to completed and keep status", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.ChangeStatus(order.Completed)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should complete after work has started", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.ChangeStatus(order.InProgress))
		require.NoError(t, o.ChangeStatus(order.Completed))

		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_Apply(t *testing.T) {
	t.Run("should reject pending to completed and leave every field unchanged", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Apply(order.Patch{Status: ptr(order.Completed), Budget: ptr(500.0)})

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.InDelta(t, 100.0, o.Details().Budget, 0)
	})

	t.Run("should apply fields and status together", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Apply(order.Patch{
			Status: ptr(order.InProgress),
			Notes:  ptr("bring tools"),
			Budget: ptr(150.0),
		})

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, o.Status())
		assert.Equal(t, "bring tools", *o.Details().Notes)
		assert.InDelta(t, 150.0, o.Details().Budget, 0)
	})

	t.Run("should clear optional text with empty string", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Apply(order.Patch{Photo: ptr("http://img")}))

		require.NoError(t, o.Apply(order.Patch{Photo: ptr("")}))

		assert.Nil(t, o.Details().Photo)
	})

	t.Run("should not touch created date", func(t *testing.T) {
		o := newPendingOrder(t)
		created := o.CreatedDate()

		require.NoError(t, o.Apply(order.Patch{Budget: ptr(1.0)}))

		assert.Equal(t, created, o.CreatedDate())
	})
}

func TestCheckCustomerFields(t *testing.T) {
	t.Run("should accept allowed fields", func(t *testing.T) {
		assert.NoError(t, order.CheckCustomerFields([]string{"budget", "status", "notes", "photo", "short_video"}))
		assert.NoError(t, order.CheckCustomerFields(nil))
	})

	t.Run("should list extraneous field names sorted and deduplicated", func(t *testing.T) {
		err := order.CheckCustomerFields([]string{"budget", "customer", "address", "customer"})

		require.Error(t, err)
		var fieldsErr *errs.FieldsNotAllowedError
		require.ErrorAs(t, err, &fieldsErr)
		assert.Equal(t, []string{"address", "customer"}, fieldsErr.Fields)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "customer")
	})
}
