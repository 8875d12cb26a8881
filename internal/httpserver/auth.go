package httpserver

import (
	"errors"
	"log"
	"net/http"
	"time"

	authsvc "artisty/internal/service/auth"
	"github.com/gin-gonic/gin"
)

func signInHandler(authSvc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := authsvc.NewState()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
			return
		}

		url, err := authSvc.AuthCodeURL(c.Param("provider"), state)
		if err != nil {
			if errors.Is(err, authsvc.ErrUnknownProvider) {
				c.JSON(http.StatusNotFound, gin.H{"message": "unknown provider"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
			return
		}

		c.SetCookie(stateCookieName, state, stateCookieMaxAge, "/", "", false, true)
		c.Redirect(http.StatusFound, url)
	}
}

func callbackHandler(authSvc AuthService, frontendOrigin string, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if errParam := c.Query("error"); errParam != "" {
			logger.Printf("provider callback error: %s", errParam)
			c.Redirect(http.StatusFound, frontendOrigin+"/login")
			return
		}

		state := c.Query("state")
		cookieState, err := c.Cookie(stateCookieName)
		if err != nil || state == "" || state != cookieState {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid state"})
			return
		}
		c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "missing code"})
			return
		}

		_, token, err := authSvc.CompleteSocialLogin(c.Request.Context(), c.Param("provider"), code)
		if err != nil {
			logger.Printf("complete social login: %v", err)
			c.Redirect(http.StatusFound, frontendOrigin+"/login")
			return
		}

		maxAge := int(authSvc.SessionTTL() / time.Second)
		c.SetCookie(sessionCookieName, token, maxAge, "/", "", false, true)
		c.Redirect(http.StatusFound, frontendOrigin+"/profile")
	}
}

func signOutHandler(authSvc AuthService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := sessionTokenFrom(c); token != "" {
			if err := authSvc.SignOut(c.Request.Context(), token); err != nil {
				logger.Printf("sign out: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Sign out failed"})
				return
			}
		}
		c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// getSessionHandler reports the current identity, or user: null for guests.
// A failing session store is an error, not a guest.
func getSessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionErrorFrom(c) != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": identityFrom(c)})
	}
}
