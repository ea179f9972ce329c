package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"portfolio-blog/config"
)

// fakeOAuthServer serves a token endpoint plus the given JSON routes.
func fakeOAuthServer(t *testing.T, routes map[string]any) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-123",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	})
	for path, body := range routes {
		body := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer access-123" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(body)
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGoogleProviderSignIn(t *testing.T) {
	srv := fakeOAuthServer(t, map[string]any{
		"/userinfo": map[string]string{
			"sub":     "g-1",
			"email":   "owner@example.com",
			"name":    "Owner",
			"picture": "https://example.com/p.png",
		},
	})

	p := NewGoogleProvider("id", "secret", "http://localhost:8080/auth/callback/google")
	p.config.Endpoint = oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"}
	p.userInfoURL = srv.URL + "/userinfo"
	p.httpClient = srv.Client()

	authURL, err := url.Parse(p.AuthCodeURL("state-xyz"))
	require.NoError(t, err)
	assert.Equal(t, "state-xyz", authURL.Query().Get("state"))
	assert.Equal(t, "http://localhost:8080/auth/callback/google", authURL.Query().Get("redirect_uri"))

	token, err := p.Exchange(context.Background(), "code-1")
	require.NoError(t, err)

	u, err := p.FetchUser(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, User{ID: "g-1", Name: "Owner", Email: "owner@example.com", Image: "https://example.com/p.png", Provider: ProviderGoogle}, u)
}

func TestGitHubProviderFallsBackToPrimaryEmail(t *testing.T) {
	srv := fakeOAuthServer(t, map[string]any{
		"/user": map[string]any{"id": 7, "login": "octo", "avatar_url": "https://example.com/o.png"},
		"/user/emails": []map[string]any{
			{"email": "other@example.com", "primary": false, "verified": true},
			{"email": "octo@example.com", "primary": true, "verified": true},
		},
	})

	p := NewGitHubProvider("id", "secret", "http://localhost:8080/auth/callback/github")
	p.config.Endpoint = oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"}
	p.userURL = srv.URL + "/user"
	p.emailURL = srv.URL + "/user/emails"
	p.httpClient = srv.Client()

	token, err := p.Exchange(context.Background(), "code-1")
	require.NoError(t, err)

	u, err := p.FetchUser(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "7", u.ID)
	assert.Equal(t, "octo", u.Name)
	assert.Equal(t, "octo@example.com", u.Email)
	assert.Equal(t, ProviderGitHub, u.Provider)
}

func TestGitHubProviderUserEndpointFailure(t *testing.T) {
	srv := fakeOAuthServer(t, nil)

	p := NewGitHubProvider("id", "secret", "")
	p.userURL = srv.URL + "/missing"
	p.httpClient = srv.Client()

	_, err := p.FetchUser(context.Background(), &oauth2.Token{AccessToken: "access-123", TokenType: "bearer"})
	assert.Error(t, err)
}

func TestProvidersFromConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     config.AuthConfig
		wantIDs []string
	}{
		{name: "none configured", cfg: config.AuthConfig{}},
		{
			name:    "github only",
			cfg:     config.AuthConfig{GitHubClientID: "a", GitHubClientSecret: "b"},
			wantIDs: []string{ProviderGitHub},
		},
		{
			name:    "google missing secret",
			cfg:     config.AuthConfig{GoogleClientID: "a"},
			wantIDs: nil,
		},
		{
			name: "both",
			cfg: config.AuthConfig{
				GitHubClientID: "a", GitHubClientSecret: "b",
				GoogleClientID: "c", GoogleClientSecret: "d",
			},
			wantIDs: []string{ProviderGitHub, ProviderGoogle},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var ids []string
			for _, p := range ProvidersFromConfig(testCase.cfg).List() {
				ids = append(ids, p.ID())
			}
			assert.Equal(t, testCase.wantIDs, ids)
		})
	}
}

func TestProvidersGet(t *testing.T) {
	reg := NewProviders(NewGitHubProvider("a", "b", ""), NewGitHubProvider("dup", "dup", ""))

	p, ok := reg.Get(ProviderGitHub)
	require.True(t, ok)
	assert.Equal(t, "GitHub", p.Name())
	assert.Len(t, reg.List(), 1)

	_, ok = reg.Get("gitlab")
	assert.False(t, ok)
}
