package middleware

import (
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/service/access"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

const (
	loginPath   = "/login"
	defaultPath = "/dashboard"
)

// SessionSource yields the current session user for gate decisions.
type SessionSource interface {
	Current() *models.User
}

// Gate guards a route group with the role gate: guests pass only where the
// guest sentinel is listed, unauthenticated visitors bounce to login with
// the intended destination preserved, and users missing a required role land
// on the default page.
func Gate(sessions SessionSource, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := access.Decide(sessions.Current(), allowedRoles, c.Request.URL.Path)
		switch decision.Verdict {
		case access.RedirectLogin:
			target := loginPath + "?returnUrl=" + url.QueryEscape(decision.ReturnPath)
			c.Redirect(http.StatusFound, target)
			c.Abort()
		case access.RedirectDefault:
			c.Redirect(http.StatusFound, defaultPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}
