package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dormdine/dormdine/internal/config"
	domainErrors "github.com/dormdine/dormdine/internal/domain/errors"
	pkgAuth "github.com/dormdine/dormdine/internal/pkg/auth"
)

const (
	// EmailContextKey is a gin context key for the authenticated user's email.
	EmailContextKey = "userEmail"
	authCookieName  = "dormdine_token"
)

// TokenParser resolves a session token into the email it was issued for.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AdminChecker reports whether the email belongs to an admin account.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AuthRequired ensures the request carries a valid session token before
// the handler runs. The token is read from the transports allowed by source.
func AuthRequired(parser TokenParser, source config.TokenSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, source)
		if token == "" {
			abortWithError(c, domainErrors.ErrUnauthenticated)
			return
		}

		email, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				err = domainErrors.ErrUnauthenticated
			}
			abortWithError(c, err)
			return
		}

		c.Set(EmailContextKey, email)
		c.Next()
	}
}

// AdminRequired rejects requests whose authenticated user is not an admin.
// Must run after AuthRequired.
func AdminRequired(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := CurrentEmail(c)
		if !ok {
			abortWithError(c, domainErrors.ErrUnauthenticated)
			return
		}

		admin, err := checker.IsAdmin(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				err = domainErrors.ErrForbidden
			}
			abortWithError(c, err)
			return
		}
		if !admin {
			abortWithError(c, domainErrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequireIdentityMatch rejects requests whose path parameter does not match
// the authenticated user's email. Must run after AuthRequired.
func RequireIdentityMatch(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := CurrentEmail(c)
		if !ok {
			abortWithError(c, domainErrors.ErrUnauthenticated)
			return
		}
		if claimed := c.Param(param); claimed != email {
			abortWithError(c, domainErrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequireQueryIdentityMatch rejects requests whose query parameter does not
// match the authenticated user's email. A missing or blank parameter is a
// validation failure. Must run after AuthRequired.
func RequireQueryIdentityMatch(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := CurrentEmail(c)
		if !ok {
			abortWithError(c, domainErrors.ErrUnauthenticated)
			return
		}
		claimed := strings.TrimSpace(c.Query(param))
		if claimed == "" {
			abortWithError(c, domainErrors.ErrValidation)
			return
		}
		if claimed != email {
			abortWithError(c, domainErrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// abortWithError maps a guard failure onto its HTTP status.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrUnauthenticated):
		c.AbortWithStatus(http.StatusUnauthorized)
	case errors.Is(err, domainErrors.ErrForbidden):
		c.AbortWithStatus(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrValidation):
		c.AbortWithStatus(http.StatusBadRequest)
	default:
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// CurrentEmail returns the authenticated email stored by AuthRequired.
func CurrentEmail(c *gin.Context) (string, bool) {
	value, ok := c.Get(EmailContextKey)
	if !ok {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}

func extractToken(c *gin.Context, source config.TokenSource) string {
	if source == config.TokenSourceHeader || source == config.TokenSourceBoth {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			return strings.TrimSpace(authHeader[7:])
		}
	}

	if source == config.TokenSourceCookie || source == config.TokenSourceBoth {
		if cookie, err := c.Cookie(authCookieName); err == nil {
			return cookie
		}
	}
	return ""
}

// SetAuthCookie writes the session token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the session token cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
