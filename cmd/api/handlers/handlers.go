package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-blog/cmd/api/auth"
	"portfolio-blog/cmd/api/dto"
	"portfolio-blog/cmd/api/services"
	"portfolio-blog/cmd/api/trace"
	"portfolio-blog/internal/logger"
)

// Access is the rule a (resource, operation) pair is served under.
type Access int

const (
	Public Access = iota
	Authenticated
)

const (
	ResourceBlogs     = "blogs"
	ResourceProjects  = "projects"
	ResourceMessages  = "messages"
	ResourceDashboard = "dashboard"
	ResourceTheme     = "theme"
	ResourceToken     = "token"

	OpList   = "list"
	OpCreate = "create"
	OpRead   = "read"
	OpUpdate = "update"
	OpDelete = "delete"
)

// accessPolicy is the single source of truth for who may call what.
var accessPolicy = map[string]map[string]Access{
	ResourceBlogs: {
		OpList: Public, OpRead: Public,
		OpCreate: Authenticated, OpUpdate: Authenticated, OpDelete: Authenticated,
	},
	ResourceProjects: {
		OpList: Public, OpRead: Public,
		OpCreate: Authenticated, OpUpdate: Authenticated, OpDelete: Authenticated,
	},
	ResourceMessages: {
		OpCreate: Public,
		OpList:   Authenticated, OpRead: Authenticated, OpUpdate: Authenticated, OpDelete: Authenticated,
	},
	ResourceDashboard: {OpRead: Authenticated},
	ResourceTheme:     {OpRead: Public, OpUpdate: Authenticated},
	ResourceToken:     {OpCreate: Authenticated},
}

// accessFor fails closed: an operation missing from the table needs a session.
func accessFor(resource, op string) Access {
	if rule, ok := accessPolicy[resource][op]; ok {
		return rule
	}
	return Authenticated
}

// Resolver is implemented by *auth.Gate.
type Resolver interface {
	Resolve(c *gin.Context) (auth.User, error)
}

// requireAccess runs before any store access. It writes the 401 itself and
// reports false when the caller may not proceed.
func requireAccess(c *gin.Context, gate Resolver, resource, op string) bool {
	if accessFor(resource, op) == Public {
		return true
	}
	if _, err := gate.Resolve(c); err != nil {
		logger.DebugWithFields("session check failed", logger.Fields{
			"resource":   resource,
			"operation":  op,
			"path":       c.Request.URL.Path,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
		})
		auth.AbortWithUnauthorized(c)
		return false
	}
	return true
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, dto.Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Response{Success: status < http.StatusBadRequest, Message: message})
}

// respondError maps the service error taxonomy onto HTTP. label names the
// resource in not-found messages, e.g. "Blog".
func respondError(c *gin.Context, label string, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.Response{Success: false, Message: "Validation failed", Error: verr.Fields})
	case errors.Is(err, services.ErrNotFound):
		respondMessage(c, http.StatusNotFound, label+" not found")
	case errors.Is(err, services.ErrUnauthorized):
		auth.AbortWithUnauthorized(c)
	default:
		_ = c.Error(err)
		logger.ErrorWithFields("request failed", logger.Fields{
			"resource":   label,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
		})
		respondMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}

func respondInvalidBody(c *gin.Context) {
	respondMessage(c, http.StatusBadRequest, "Invalid request body")
}

// queryBool returns nil when the parameter is absent or unparseable.
func queryBool(c *gin.Context, key string) *bool {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
