package http

import (
	"strings"
	"time"

	"fixit/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

const (
	actorKey   = "actor"
	sessionKey = "session"
)

// session identifies the access token a request was authenticated with.
type session struct {
	tokenID   string
	expiresAt time.Time
}

// authenticate resolves the bearer token into a user.Actor. A missing,
// invalid or revoked token leaves the caller anonymous; each endpoint
// decides whether that is enough.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(actorKey, user.Anonymous())

		token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if token == "" {
			return next(c)
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			s.logger.DebugContext(c.Request().Context(), "Rejected access token", "error", err)
			return next(c)
		}

		revoked, err := s.denylist.IsRevoked(c.Request().Context(), claims.TokenID)
		if err != nil {
			return s.fail(c, err)
		}
		if revoked {
			return next(c)
		}

		actor, err := user.NewActor(claims.UserID, claims.Role)
		if err != nil {
			return next(c)
		}

		c.Set(actorKey, actor)
		c.Set(sessionKey, session{tokenID: claims.TokenID, expiresAt: claims.ExpiresAt})
		return next(c)
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func actorOf(c echo.Context) user.Actor {
	if a, ok := c.Get(actorKey).(user.Actor); ok {
		return a
	}
	return user.Anonymous()
}

func sessionOf(c echo.Context) session {
	s, _ := c.Get(sessionKey).(session)
	return s
}
