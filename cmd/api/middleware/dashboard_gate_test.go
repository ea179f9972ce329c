package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"portfolio-blog/cmd/api/auth"
)

type stubResolver struct {
	user auth.User
	err  error
}

func (s stubResolver) Resolve(*gin.Context) (auth.User, error) {
	return s.user, s.err
}

func newGatedEngine(resolver Resolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(DashboardGate(resolver, "/login", []string{"/dashboard"}))
	r.GET("/dashboard/*path", func(c *gin.Context) {
		u, _ := c.Get(ContextKeyUser)
		c.JSON(http.StatusOK, gin.H{"user": u.(auth.User).Email})
	})
	r.GET("/dashboards", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/blogs", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestDashboardGate(t *testing.T) {
	anonymous := stubResolver{err: auth.ErrNoSession}
	signedIn := stubResolver{user: auth.User{ID: "1", Email: "owner@example.com"}}

	testCases := []struct {
		name         string
		resolver     Resolver
		target       string
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "anonymous dashboard redirects with callback",
			resolver:     anonymous,
			target:       "/dashboard/blogs?page=2",
			wantStatus:   http.StatusFound,
			wantLocation: "/login?callbackUrl=%2Fdashboard%2Fblogs%3Fpage%3D2",
		},
		{
			name:         "anonymous dashboard root",
			resolver:     anonymous,
			target:       "/dashboard/",
			wantStatus:   http.StatusFound,
			wantLocation: "/login?callbackUrl=%2Fdashboard%2F",
		},
		{
			name:       "signed in passes through",
			resolver:   signedIn,
			target:     "/dashboard/messages",
			wantStatus: http.StatusOK,
		},
		{
			name:       "public path untouched",
			resolver:   anonymous,
			target:     "/api/blogs",
			wantStatus: http.StatusOK,
		},
		{
			name:       "prefix matches whole segment only",
			resolver:   anonymous,
			target:     "/dashboards",
			wantStatus: http.StatusOK,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newGatedEngine(testCase.resolver).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, testCase.target, nil))

			assert.Equal(t, testCase.wantStatus, rec.Code)
			if testCase.wantLocation != "" {
				assert.Equal(t, testCase.wantLocation, rec.Header().Get("Location"))
			}
		})
	}
}

func TestIsProtected(t *testing.T) {
	prefixes := []string{"/dashboard/", "", "/admin"}

	assert.True(t, isProtected("/dashboard", prefixes))
	assert.True(t, isProtected("/dashboard/x/y", prefixes))
	assert.True(t, isProtected("/admin", prefixes))
	assert.False(t, isProtected("/dashboardx", prefixes))
	assert.False(t, isProtected("/", prefixes))
}
