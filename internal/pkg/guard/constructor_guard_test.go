package guard_test

import (
	"errors"
	"testing"

	"fixit/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("offer must be created via NewOffer")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type rateCommand struct {
		rate  int
		guard guard.ConstructorGuard
	}
	errRateCommand := errors.New("rate command must be created via constructor")

	newRateCommand := func(rate int) (rateCommand, error) {
		if rate < 1 || rate > 5 {
			return rateCommand{}, errors.New("rate out of range")
		}
		return rateCommand{rate: rate, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_validates", func(t *testing.T) {
		cmd, err := newRateCommand(4)

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errRateCommand))
		assert.Equal(t, 4, cmd.rate)
	})

	t.Run("struct_literal_fails_validation", func(t *testing.T) {
		cmd := rateCommand{rate: 4}

		assert.Equal(t, errRateCommand, cmd.guard.Validate(errRateCommand))
	})

	t.Run("copies_keep_constructed_state", func(t *testing.T) {
		cmd, _ := newRateCommand(2)
		cp := cmd

		require.NoError(t, cp.guard.Validate(errRateCommand))
	})
}
