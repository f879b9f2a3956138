// Package pgutil holds the query building blocks shared by the GORM
// repositories: unique violation mapping, ORDER BY translation and the
// multi-column ILIKE search used by list endpoints.
package pgutil

import (
	"errors"
	"strings"

	"fixit/internal/core/ports"
	"fixit/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the SQLSTATE of a unique index conflict.
const uniqueViolation = "23505"

// MapWriteError turns a unique violation into *errs.ConflictError. constraints
// maps index names to the field reported to the client; unknown indexes are
// reported under their own name. Other errors pass through unchanged.
func MapWriteError(err error, constraints map[string]string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}

	field, ok := constraints[pgErr.ConstraintName]
	if !ok {
		field = pgErr.ConstraintName
	}
	return errs.NewConflictErrorWithCause(field, err)
}

// Order appends one ORDER BY term per ordering whose field is present in columns.
func Order(db *gorm.DB, ordering []ports.Ordering, columns map[string]string) *gorm.DB {
	for _, o := range ordering {
		column, ok := columns[o.Field]
		if !ok {
			continue
		}
		db = db.Order(clause.OrderByColumn{
			Column: clause.Column{Name: column, Raw: true},
			Desc:   o.Descending,
		})
	}
	return db
}

// Terms splits a free-text search into its whitespace separated terms.
func Terms(search string) []string {
	return strings.Fields(search)
}

// Contains builds a case-insensitive substring pattern with LIKE wildcards escaped.
func Contains(term string) string {
	return "%" + escapeLike(term) + "%"
}

// AnyColumnContains returns a parenthesised "c1 ILIKE ? OR c2 ILIKE ? ..."
// condition and its arguments for a single search term.
func AnyColumnContains(term string, columns ...string) (string, []any) {
	pattern := Contains(term)
	conds := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, c := range columns {
		conds = append(conds, c+" ILIKE ?")
		args = append(args, pattern)
	}
	return "(" + strings.Join(conds, " OR ") + ")", args
}

// Search requires every term to match at least one of columns.
func Search(db *gorm.DB, search string, columns ...string) *gorm.DB {
	for _, term := range Terms(search) {
		cond, args := AnyColumnContains(term, columns...)
		db = db.Where(cond, args...)
	}
	return db
}

// Nothing filters every row out.
func Nothing(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
