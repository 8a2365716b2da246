package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/application"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/helpers"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/response"
)

const userKey = "user"

// SessionResolver is the part of the session manager the middleware needs.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}

// SessionToken reads an explicit Authorization: Bearer token first, then the
// session cookie.
func SessionToken(c *gin.Context, cookieName string) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		if tok := strings.TrimSpace(h[7:]); tok != "" {
			return tok
		}
	}
	if tok, err := c.Cookie(cookieName); err == nil {
		return tok
	}
	return ""
}

// Session resolves the caller's session and stores the user in the context.
// Requests without an active session stop with 401.
func Session(sessions SessionResolver, cookieName string, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := sessions.Resolve(c.Request.Context(), SessionToken(c, cookieName))
		if err != nil {
			if !errors.Is(err, application.ErrNoActiveSession) {
				helpers.LogError(logger, "session lookup failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
				response.Abort(c, http.StatusInternalServerError, "internal error", nil)
				return
			}
			response.Abort(c, http.StatusUnauthorized, application.ErrNoActiveSession.Error(), nil)
			return
		}
		c.Set(userKey, u)
		c.Set("userID", u.ID)
		c.Next()
	}
}

// RequireRole must run after Session.
func RequireRole(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, application.ErrNoActiveSession.Error(), nil)
			return
		}
		if u.Role() != role {
			response.Abort(c, http.StatusForbidden, "only "+role.String()+" accounts can do this", nil)
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok && u != nil
}
