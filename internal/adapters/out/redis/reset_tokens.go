package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	resetPrefix     = "reset:"
	resetTokenBytes = 32
)

// ResetTokenStore implements ports.ResetTokenStore. A token is an opaque hex
// string mapped to the user id; it lives for ttl and is removed on Consume.
type ResetTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResetTokenStore(client *redis.Client, ttl time.Duration) *ResetTokenStore {
	return &ResetTokenStore{client: client, ttl: ttl}
}

func (s *ResetTokenStore) Issue(ctx context.Context, userID kernel.UUID) (string, error) {
	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)

	if err := s.client.Set(ctx, resetPrefix+token, userID.String(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return token, nil
}

func (s *ResetTokenStore) Lookup(ctx context.Context, token string) (kernel.UUID, error) {
	if !wellFormed(token) {
		return kernel.UUID{}, ports.ErrInvalidResetToken
	}
	return owner(s.client.Get(ctx, resetPrefix+token))
}

// Consume uses GETDEL so two concurrent resets cannot both succeed.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (kernel.UUID, error) {
	if !wellFormed(token) {
		return kernel.UUID{}, ports.ErrInvalidResetToken
	}
	return owner(s.client.GetDel(ctx, resetPrefix+token))
}

func owner(cmd *redis.StringCmd) (kernel.UUID, error) {
	value, err := cmd.Result()
	if errors.Is(err, redis.Nil) {
		return kernel.UUID{}, ports.ErrInvalidResetToken
	}
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("read reset token: %w", err)
	}

	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errors.Join(ports.ErrInvalidResetToken, err)
	}
	return id, nil
}

func wellFormed(token string) bool {
	if len(token) != hex.EncodedLen(resetTokenBytes) {
		return false
	}
	_, err := hex.DecodeString(token)
	return err == nil
}
