package pgutil_test

import (
	"errors"
	"testing"

	"fixit/internal/adapters/out/postgres/pgutil"
	"fixit/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapWriteError(t *testing.T) {
	constraints := map[string]string{"uq_users_email": "email"}

	t.Run("known unique index", func(t *testing.T) {
		err := pgutil.MapWriteError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}, constraints)

		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "email", conflict.ParamName)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("unknown unique index", func(t *testing.T) {
		err := pgutil.MapWriteError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_other"}, constraints)

		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "uq_other", conflict.ParamName)
	})

	t.Run("other postgres error", func(t *testing.T) {
		original := &pgconn.PgError{Code: "23503"}
		assert.Same(t, original, pgutil.MapWriteError(original, constraints))
	})

	t.Run("plain error", func(t *testing.T) {
		original := errors.New("boom")
		assert.Equal(t, original, pgutil.MapWriteError(original, constraints))
	})
}

func TestAnyColumnContains(t *testing.T) {
	cond, args := pgutil.AnyColumnContains("50%_a", "users.email", "users.first_name")

	assert.Equal(t, "(users.email ILIKE ? OR users.first_name ILIKE ?)", cond)
	assert.Equal(t, []any{`%50\%\_a%`, `%50\%\_a%`}, args)
}

func TestTerms(t *testing.T) {
	assert.Equal(t, []string{"ann", "lee"}, pgutil.Terms("  ann \t lee "))
	assert.Empty(t, pgutil.Terms("   "))
}
