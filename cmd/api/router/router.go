package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"portfolio-blog/cmd/api/auth"
	"portfolio-blog/cmd/api/dto"
	"portfolio-blog/cmd/api/handlers"
	"portfolio-blog/cmd/api/middleware"
	"portfolio-blog/cmd/api/services"
	"portfolio-blog/internal/logger"
	"portfolio-blog/config"
	_ "portfolio-blog/docs"
)

// Deps is everything the HTTP layer needs from main.
type Deps struct {
	Config    config.AppConfig
	Store     handlers.Pinger
	Blogs     services.BlogPostRepository
	Projects  services.ProjectRepository
	Messages  services.MessageRepository
	Gate      *auth.Gate
	Providers *auth.Providers
	// Events receives content change events; nil publishes nothing.
	Events services.Emitter
}

func New(deps Deps) *gin.Engine {
	cfg := deps.Config

	r := gin.New()
	r.HandleMethodNotAllowed = true
	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		logger.WarnWithFields("invalid trusted proxies, using socket peer", logger.Fields{"error": err.Error()})
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(
		gin.CustomRecovery(recoverWithEnvelope),
		middleware.RequestTrace(),
		middleware.RequestLogging(),
		middleware.RequestTimeout(cfg.Server.RequestTimeout),
		middleware.DashboardGate(deps.Gate, cfg.Auth.LoginPath, cfg.Auth.ProtectedPrefixes),
	)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.Response{Success: false, Message: "Not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.Response{Success: false, Message: "Method not allowed"})
	})

	blogsSvc := services.NewBlogService(deps.Blogs, deps.Events)
	projectsSvc := services.NewProjectService(deps.Projects, deps.Events)
	messagesSvc := services.NewMessageService(deps.Messages, deps.Events)
	dashboardSvc := services.NewDashboardService(deps.Blogs, deps.Projects, deps.Messages)
	authSvc := services.NewAuthService(deps.Providers, deps.Gate.Tokens(), cfg.Auth.AllowedEmails)
	sessions := deps.Gate.Sessions()
	gate := deps.Gate

	// separate budgets so contact spam cannot lock the owner out of sign-in
	contactLimit := middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window))
	signinLimit := middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window))

	r.GET("/health", handlers.HealthHandler(deps.Store))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authOpts := handlers.AuthOptions{
		LoginPath:       cfg.Auth.LoginPath,
		DefaultCallback: cfg.Auth.DefaultCallback,
		CookieSecure:    cfg.Auth.CookieSecure,
	}
	r.GET(cfg.Auth.LoginPath, handlers.LoginHandler(authSvc, gate, authOpts))
	authGroup := r.Group("/auth")
	{
		authGroup.GET("/providers", handlers.ProvidersHandler(authSvc))
		authGroup.GET("/signin/:provider", signinLimit, handlers.SignInHandler(authSvc, authOpts))
		authGroup.GET("/callback/:provider", signinLimit, handlers.CallbackHandler(authSvc, sessions, authOpts))
		authGroup.POST("/signout", handlers.SignOutHandler(sessions))
		authGroup.GET("/session", handlers.SessionHandler(gate))
		authGroup.POST("/token", handlers.TokenHandler(authSvc, gate))
	}

	api := r.Group("/api")
	{
		api.GET("/blogs", handlers.ListBlogsHandler(blogsSvc, gate))
		api.POST("/blogs", handlers.CreateBlogHandler(blogsSvc, gate))
		api.GET("/blogs/:id", handlers.GetBlogHandler(blogsSvc, gate))
		api.PUT("/blogs/:id", handlers.UpdateBlogHandler(blogsSvc, gate))
		api.DELETE("/blogs/:id", handlers.DeleteBlogHandler(blogsSvc, gate))

		api.GET("/projects", handlers.ListProjectsHandler(projectsSvc, gate))
		api.POST("/projects", handlers.CreateProjectHandler(projectsSvc, gate))
		api.GET("/projects/:id", handlers.GetProjectHandler(projectsSvc, gate))
		api.PUT("/projects/:id", handlers.UpdateProjectHandler(projectsSvc, gate))
		api.DELETE("/projects/:id", handlers.DeleteProjectHandler(projectsSvc, gate))

		api.GET("/messages", handlers.ListMessagesHandler(messagesSvc, gate))
		api.POST("/messages", contactLimit, handlers.CreateMessageHandler(messagesSvc, gate))
		api.GET("/messages/:id", handlers.GetMessageHandler(messagesSvc, gate))
		api.PUT("/messages/:id", handlers.UpdateMessageHandler(messagesSvc, gate))
		api.DELETE("/messages/:id", handlers.DeleteMessageHandler(messagesSvc, gate))

		api.GET("/dashboard/stats", handlers.DashboardStatsHandler(dashboardSvc, gate))

		api.GET("/user/theme", handlers.GetThemeHandler(sessions))
		api.POST("/user/theme", handlers.SetThemeHandler(sessions, gate))
	}

	dashboardPage := handlers.DashboardPageHandler(cfg.Dashboard.StaticDir)
	r.GET("/dashboard", dashboardPage)
	r.GET("/dashboard/*path", dashboardPage)

	return r
}

func recoverWithEnvelope(c *gin.Context, recovered any) {
	logger.ErrorWithFields("panic recovered", logger.Fields{
		"path":  c.Request.URL.Path,
		"panic": recovered,
	})
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Response{Success: false, Message: "Internal server error"})
}

// WithCORS wraps h for the configured browser origins. With no origins the
// handler is returned unchanged and only same-origin requests work.
func WithCORS(h http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		return h
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
	}).Handler(h)
}
