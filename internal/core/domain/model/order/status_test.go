package order_test

import (
	"testing"

	"fixit/internal/core/domain/model/order"
	"fixit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{"pending", order.Pending, false},
		{"in progress", order.InProgress, false},
		{"completed", order.Completed, false},
		{"cancelled", order.Cancelled, false},
		{"unknown", order.Unknown, true},
		{"out of range", order.Status(9), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "In Progress", order.InProgress.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.InProgress.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_TransitionTo(t *testing.T) {
	all := []order.Status{order.Pending, order.InProgress, order.Completed, order.Cancelled}

	t.Run("should reject pending to completed", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.Completed)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cannot transition directly from Pending to Completed")
		assert.Equal(t, order.Unknown, next)
	})

	t.Run("should accept every other edge between valid statuses", func(t *testing.T) {
		for _, from := range all {
			for _, to := range all {
				if from == order.Pending && to == order.Completed {
					continue
				}
				next, err := from.TransitionTo(to)
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, next)
			}
		}
	})

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := order.InProgress.TransitionTo(order.Unknown)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus(2)
	require.NoError(t, err)
	assert.Equal(t, order.InProgress, s)

	_, err = order.ParseStatus(0)
	assert.Error(t, err)
}
