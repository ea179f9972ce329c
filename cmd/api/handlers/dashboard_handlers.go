package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-blog/cmd/api/auth"
	"portfolio-blog/cmd/api/middleware"
	"portfolio-blog/cmd/api/services"
)

// DashboardStatsHandler godoc
// @Summary      Dashboard counters
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.DashboardStats}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /dashboard/stats [get]
func DashboardStatsHandler(svc *services.DashboardService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceDashboard, OpRead) {
			return
		}
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			respondError(c, "Dashboard", err)
			return
		}
		respond(c, http.StatusOK, stats)
	}
}

// DashboardPageHandler serves the built dashboard UI from staticDir, falling
// back to index.html for client-side routes. With no staticDir it answers
// with the signed in user. It runs behind middleware.DashboardGate.
func DashboardPageHandler(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if staticDir == "" {
			u, _ := c.Get(middleware.ContextKeyUser)
			user, _ := u.(auth.User)
			respond(c, http.StatusOK, gin.H{"user": sessionUser(user)})
			return
		}

		rel := strings.TrimPrefix(path.Clean("/"+c.Param("path")), "/")
		file := filepath.Join(staticDir, filepath.FromSlash(rel))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
