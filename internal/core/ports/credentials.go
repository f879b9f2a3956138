package ports

import (
	"context"
	"errors"
	"time"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
)

var (
	// ErrPasswordMismatch is returned by PasswordHasher.Compare.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrInvalidToken covers malformed, expired and badly signed access tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidResetToken covers unknown, expired, consumed and malformed reset tokens.
	ErrInvalidResetToken = errors.New("invalid reset link")
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns ErrPasswordMismatch when password does not produce hash.
	Compare(hash, password string) error
}

// AccessToken is a signed bearer token handed out on login.
type AccessToken struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// TokenClaims is what a verified access token says about its bearer.
type TokenClaims struct {
	UserID    kernel.UUID
	Role      user.Role
	TokenID   string
	ExpiresAt time.Time
}

type TokenIssuer interface {
	Issue(u *user.User) (AccessToken, error)
	// Verify returns ErrInvalidToken for any token it cannot trust.
	Verify(token string) (TokenClaims, error)
}

// TokenDenylist keeps revoked access tokens until they would expire anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// ResetTokenStore holds time-boxed single-use password reset tokens.
type ResetTokenStore interface {
	// Issue stores a fresh opaque token for userID and returns it.
	Issue(ctx context.Context, userID kernel.UUID) (string, error)
	// Lookup returns the owner of a live token without using it up.
	Lookup(ctx context.Context, token string) (kernel.UUID, error)
	// Consume returns the owner and invalidates the token atomically.
	Consume(ctx context.Context, token string) (kernel.UUID, error)
}

// Mailer delivers messages out of band.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, link string) error
}
