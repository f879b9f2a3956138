package commands_test

import (
	"testing"

	"fixit/internal/core/application/usecases/commands"
	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/order"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	actor := newActor(t, user.Customer)

	t.Run("should require a status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(actor, kernel.NewUUID(), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an unknown status code", func(t *testing.T) {
		code := 9
		_, err := commands.NewChangeOrderStatusCommand(actor, kernel.NewUUID(), &code)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a zero order id", func(t *testing.T) {
		code := 2
		_, err := commands.NewChangeOrderStatusCommand(actor, kernel.UUID{}, &code)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should parse the status code", func(t *testing.T) {
		code := 4
		cmd, err := commands.NewChangeOrderStatusCommand(actor, kernel.NewUUID(), &code)
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, cmd.Status())
		require.NoError(t, cmd.Validate())
	})
}
