package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateResolve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sessions := NewSessionStore("session-secret", 3600, false)
	tokens := NewJWTManager("jwt-secret", "portfolio-blog", time.Hour)
	gate := NewGate(sessions, tokens)

	cookieRec := httptest.NewRecorder()
	require.NoError(t, sessions.SetUser(cookieRec, httptest.NewRequest(http.MethodGet, "/", nil), testUser))
	sessionCookie := cookieRec.Result().Cookies()[0]

	validToken, err := tokens.Sign(testUser)
	require.NoError(t, err)
	foreignToken, err := NewJWTManager("other", "portfolio-blog", time.Hour).Sign(testUser)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		authHeader string
		withCookie bool
		wantErr    error
	}{
		{name: "anonymous", wantErr: ErrNoSession},
		{name: "cookie session", withCookie: true},
		{name: "bearer token", authHeader: "Bearer " + validToken},
		{name: "forged bearer token", authHeader: "Bearer " + foreignToken, wantErr: ErrNoSession},
		{name: "malformed header", authHeader: "Basic abc", wantErr: ErrNoSession},
		{name: "invalid bearer beats valid cookie", authHeader: "Bearer nope", withCookie: true, wantErr: ErrNoSession},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ginCtx, _ := gin.CreateTestContext(httptest.NewRecorder())
			req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
			if testCase.authHeader != "" {
				req.Header.Set("Authorization", testCase.authHeader)
			}
			if testCase.withCookie {
				req.AddCookie(sessionCookie)
			}
			ginCtx.Request = req

			u, err := gate.Resolve(ginCtx)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testUser, u)
		})
	}
}

func TestGateResolveWithoutTokenManager(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gate := NewGate(NewSessionStore("s", 60, false), nil)

	ginCtx, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer anything")
	ginCtx.Request = req

	_, err := gate.Resolve(ginCtx)
	assert.ErrorIs(t, err, ErrNoSession)
}
