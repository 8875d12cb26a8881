package httpserver

import (
	"log"
	"strings"
	"time"

	"artisty/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "session_token"
	cartCookieName    = "cart_id"
	stateCookieName   = "auth_state"

	identityCtxKey   = "identity"
	sessionErrCtxKey = "sessionError"

	cartCookieMaxAge  = int(365 * 24 * time.Hour / time.Second)
	stateCookieMaxAge = int(5 * time.Minute / time.Second)
)

// identityMiddleware resolves the session token once per request. Requests
// without a valid session proceed with no identity; protected handlers turn
// that into a 401. A failing session store is recorded separately so those
// handlers report the outage instead of treating the caller as logged out.
func identityMiddleware(authSvc AuthService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionTokenFrom(c)
		if token != "" {
			identity, err := authSvc.Identity(c.Request.Context(), token)
			if err != nil {
				logger.Printf("resolve session: %v", err)
				c.Set(sessionErrCtxKey, err)
			} else if identity != nil {
				c.Set(identityCtxKey, identity)
			}
		}
		c.Next()
	}
}

func sessionErrorFrom(c *gin.Context) error {
	v, ok := c.Get(sessionErrCtxKey)
	if !ok {
		return nil
	}
	err, _ := v.(error)
	return err
}

func identityFrom(c *gin.Context) *domain.Identity {
	v, ok := c.Get(identityCtxKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*domain.Identity)
	return identity
}

func sessionTokenFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// cartIDFrom returns the device's cart id, issuing the long-lived cookie on
// first touch. The cookie plays the role of a per-device storage key: the
// cart belongs to the browser profile, not to the logged-in user.
func cartIDFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(cartCookieName); err == nil && cookie != "" {
		return cookie
	}
	id := uuid.NewString()
	c.SetCookie(cartCookieName, id, cartCookieMaxAge, "/", "", false, true)
	return id
}
