package security

import (
	"errors"
	"fmt"
	"time"

	"fixit/internal/core/domain/model/kernel"
	"fixit/internal/core/domain/model/user"
	"fixit/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "fixit"

// Claims is the payload of an access token.
type Claims struct {
	UserID string `json:"uid"`
	Role   int    `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 access tokens. It implements ports.TokenIssuer.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for u with a fresh token id.
func (s *JWTService) Issue(u *user.User) (ports.AccessToken, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	id := uuid.NewString()

	claims := &Claims{
		UserID: u.ID().String(),
		Role:   int(u.Role()),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return ports.AccessToken{}, fmt.Errorf("sign token: %w", err)
	}

	return ports.AccessToken{Value: signed, ID: id, ExpiresAt: expiresAt}, nil
}

// Verify checks the signature, expiry and issuer; any failure is ports.ErrInvalidToken.
func (s *JWTService) Verify(token string) (ports.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return ports.TokenClaims{}, errors.Join(ports.ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.ID == "" {
		return ports.TokenClaims{}, ports.ErrInvalidToken
	}

	id, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return ports.TokenClaims{}, errors.Join(ports.ErrInvalidToken, err)
	}

	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return ports.TokenClaims{}, errors.Join(ports.ErrInvalidToken, err)
	}

	return ports.TokenClaims{
		UserID:    id,
		Role:      role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
