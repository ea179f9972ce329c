package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"portfolio-blog/cmd/api/auth"
	"portfolio-blog/cmd/api/dto"
	"portfolio-blog/cmd/api/services"
	"portfolio-blog/cmd/api/trace"
	"portfolio-blog/internal/logger"
)

const (
	oauthStateCookieName    = "oauth_state"
	oauthCallbackCookieName = "oauth_callback"
	oauthCookieMaxAge       = 300
)

// Sign-in failure codes passed to the login page as ?error=.
const (
	errCodeProvider      = "provider_error"
	errCodeInvalidState  = "invalid_state"
	errCodeAccessDenied  = "access_denied"
	errCodeSignInFailed  = "signin_failed"
	errCodeSessionFailed = "session_failed"
)

// AuthOptions carries the sign-in flow settings from config.
type AuthOptions struct {
	LoginPath       string
	DefaultCallback string
	CookieSecure    bool
}

func generateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func sessionUser(u auth.User) dto.SessionUser {
	return dto.SessionUser{ID: u.ID, Name: u.Name, Email: u.Email, Image: u.Image, Provider: u.Provider}
}

func providerList(authSvc *services.AuthService, callbackURL string) []dto.ProviderDTO {
	out := make([]dto.ProviderDTO, 0, len(authSvc.Providers()))
	for _, p := range authSvc.Providers() {
		signin := "/auth/signin/" + p.ID()
		if callbackURL != "" {
			signin += "?callbackUrl=" + url.QueryEscape(callbackURL)
		}
		out = append(out, dto.ProviderDTO{ID: p.ID(), Name: p.Name(), SigninURL: signin})
	}
	return out
}

func (o AuthOptions) loginError(code string) string {
	return o.LoginPath + "?error=" + url.QueryEscape(code)
}

func (o AuthOptions) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", o.CookieSecure, true)
}

// LoginHandler godoc
// @Summary      Login page data
// @Description  Redirects to callbackUrl when already signed in; otherwise lists the configured providers
// @Tags         auth
// @Param        callbackUrl  query  string  false  "Where to go after sign-in"
// @Param        error        query  string  false  "Failure code from a previous attempt"
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.LoginPage}
// @Success      302  {string}  string  "Already signed in"
// @Router       /login [get]
func LoginHandler(authSvc *services.AuthService, gate Resolver, opts AuthOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		callbackURL := auth.SafeCallbackURL(c.Query("callbackUrl"), opts.DefaultCallback)
		if _, err := gate.Resolve(c); err == nil {
			c.Redirect(http.StatusFound, callbackURL)
			return
		}
		respond(c, http.StatusOK, dto.LoginPage{
			CallbackURL: callbackURL,
			Error:       c.Query("error"),
			Providers:   providerList(authSvc, callbackURL),
		})
	}
}

// ProvidersHandler godoc
// @Summary      Configured sign-in providers
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ProviderDTO}
// @Router       /auth/providers [get]
func ProvidersHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, http.StatusOK, providerList(authSvc, ""))
	}
}

// SignInHandler godoc
// @Summary      Start provider sign-in
// @Description  Stores a random state in a short-lived cookie and redirects to the provider consent page
// @Tags         auth
// @Param        provider     path   string  true   "github or google"
// @Param        callbackUrl  query  string  false  "Relative path to return to"
// @Success      302  {string}  string  "Provider consent page"
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /auth/signin/{provider} [get]
func SignInHandler(authSvc *services.AuthService, opts AuthOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID := c.Param("provider")
		fields := logger.Fields{
			"provider":   providerID,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
		}

		state, err := generateState()
		if err != nil {
			fields["error"] = err.Error()
			logger.ErrorWithFields("signin failed to generate state", fields)
			c.Redirect(http.StatusFound, opts.loginError(errCodeSignInFailed))
			return
		}

		loginURL, err := authSvc.BuildLoginURL(providerID, state)
		if errors.Is(err, services.ErrUnknownProvider) {
			respondMessage(c, http.StatusNotFound, "Provider not found")
			return
		}
		if err != nil {
			respondError(c, "Provider", err)
			return
		}

		// state in a cookie guards the callback against CSRF
		opts.setCookie(c, oauthStateCookieName, state, oauthCookieMaxAge)
		opts.setCookie(c, oauthCallbackCookieName,
			auth.SafeCallbackURL(c.Query("callbackUrl"), opts.DefaultCallback), oauthCookieMaxAge)

		logger.InfoWithFields("redirect to oauth provider", fields)
		c.Redirect(http.StatusFound, loginURL)
	}
}

// CallbackHandler godoc
// @Summary      Provider sign-in callback
// @Description  Verifies state, exchanges the code, stores the user in the session and redirects to the saved callback path. Failures redirect to the login page with ?error=
// @Tags         auth
// @Param        provider  path   string  true  "github or google"
// @Param        code      query  string  true  "Authorization code"
// @Param        state     query  string  true  "State from the signin redirect"
// @Success      302  {string}  string  "Saved callback path or login page"
// @Router       /auth/callback/{provider} [get]
func CallbackHandler(authSvc *services.AuthService, sessions *auth.SessionStore, opts AuthOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		providerID := c.Param("provider")
		state := c.Query("state")
		code := c.Query("code")
		fields := logger.Fields{
			"provider":   providerID,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
		}

		// expire state right away so it cannot be replayed
		cookieState, stateErr := c.Cookie(oauthStateCookieName)
		callbackURL, _ := c.Cookie(oauthCallbackCookieName)
		opts.setCookie(c, oauthStateCookieName, "", -1)
		opts.setCookie(c, oauthCallbackCookieName, "", -1)

		if providerErr := c.Query("error"); providerErr != "" {
			fields["error"] = providerErr
			logger.InfoWithFields("oauth provider returned error", fields)
			c.Redirect(http.StatusFound, opts.loginError(errCodeProvider))
			return
		}

		if state == "" || code == "" || stateErr != nil || cookieState != state {
			logger.ErrorWithFields("oauth callback invalid state", fields)
			c.Redirect(http.StatusFound, opts.loginError(errCodeInvalidState))
			return
		}

		u, err := authSvc.CompleteSignIn(c.Request.Context(), providerID, code)
		if err != nil {
			fields["error"] = err.Error()
			logger.ErrorWithFields("oauth callback failed", fields)
			errCode := errCodeSignInFailed
			if errors.Is(err, services.ErrNotAllowed) {
				errCode = errCodeAccessDenied
			}
			c.Redirect(http.StatusFound, opts.loginError(errCode))
			return
		}

		if err := sessions.SetUser(c.Writer, c.Request, u); err != nil {
			fields["error"] = err.Error()
			logger.ErrorWithFields("failed to save session", fields)
			c.Redirect(http.StatusFound, opts.loginError(errCodeSessionFailed))
			return
		}

		target := auth.SafeCallbackURL(callbackURL, opts.DefaultCallback)
		fields["redirect_to"] = target
		fields["user_id"] = u.ID
		logger.InfoWithFields("signed in", fields)
		c.Redirect(http.StatusFound, target)
	}
}

// SignOutHandler godoc
// @Summary      Sign out
// @Description  Clears the cookie session. Bearer tokens from /auth/token stay valid until they expire (JWT_TTL, default 1h).
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /auth/signout [post]
func SignOutHandler(sessions *auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.Clear(c.Writer, c.Request); err != nil {
			respondError(c, "Session", err)
			return
		}
		respondMessage(c, http.StatusOK, "Signed out")
	}
}

// SessionHandler godoc
// @Summary      Current session
// @Description  The signed in user, or data null
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.SessionUser}
// @Router       /auth/session [get]
func SessionHandler(gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := gate.Resolve(c)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": nil})
			return
		}
		respond(c, http.StatusOK, sessionUser(u))
	}
}

// TokenHandler godoc
// @Summary      Issue a bearer token
// @Description  Exchanges the current session for a JWT usable in the Authorization header
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.TokenResponse}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      501  {object}  dto.ErrorResponseDTO
// @Router       /auth/token [post]
func TokenHandler(authSvc *services.AuthService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceToken, OpCreate) {
			return
		}
		u, err := gate.Resolve(c)
		if err != nil {
			auth.AbortWithUnauthorized(c)
			return
		}
		token, expiresIn, err := authSvc.IssueToken(u)
		if errors.Is(err, services.ErrTokensDisabled) {
			respondMessage(c, http.StatusNotImplemented, "Token issuing is not configured")
			return
		}
		if err != nil {
			respondError(c, "Token", err)
			return
		}
		respond(c, http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresIn: expiresIn})
	}
}
