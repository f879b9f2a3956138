// Package ports defines the contracts between the marketplace core and its
// infrastructure: repositories, the unit of work, credential handling and
// outbound notification.
package ports

import (
	"context"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users.
// Users are never physically removed; soft deletion is an Update.
type UserRepository interface {
	// Add persists a new user. A duplicate email or phone yields *errs.ConflictError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user, including soft deletion.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by id whether deleted or not.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by normalized email whether deleted or not.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// List returns users matching the filter. Deleted users are left out
	// unless filter.IncludeDeleted is set.
	List(ctx context.Context, filter UserFilter) ([]*user.User, error)
}
