package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-blog/cmd/api/auth"
	"portfolio-blog/cmd/api/trace"
	"portfolio-blog/internal/logger"
)

// ContextKeyUser is where the gate leaves the resolved user for handlers.
const ContextKeyUser = "session_user"

// Resolver is implemented by *auth.Gate.
type Resolver interface {
	Resolve(c *gin.Context) (auth.User, error)
}

// DashboardGate redirects requests under a protected prefix to the login
// page when they carry no session. The original path and query travel along
// as callbackUrl.
func DashboardGate(gate Resolver, loginPath string, prefixes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isProtected(c.Request.URL.Path, prefixes) {
			c.Next()
			return
		}

		u, err := gate.Resolve(c)
		if err != nil {
			target := loginPath + "?callbackUrl=" + url.QueryEscape(c.Request.URL.RequestURI())
			logger.DebugWithFields("dashboard gate redirect", logger.Fields{
				"path":        c.Request.URL.Path,
				"redirect_to": target,
				"request_id":  trace.RequestIDFromContext(c.Request.Context()),
			})
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, u)
		c.Next()
	}
}

// isProtected matches whole path segments: /dashboard and /dashboard/x,
// but not /dashboards.
func isProtected(path string, prefixes []string) bool {
	for _, p := range prefixes {
		p = strings.TrimRight(p, "/")
		if p == "" {
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
