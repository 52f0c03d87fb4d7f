package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// RequireLogin gates a route group on an authenticated session, redirecting
// anonymous visitors to the login page with a flash.
func RequireLogin(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, username, ok := CurrentUser(store, c)
		if !ok {
			AddFlash(store, c, "warning", "Please login first.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("user_id", id)
		c.Set("username", username)
		c.Next()
	}
}
