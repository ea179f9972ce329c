package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"portfolio-blog/cmd/api/httpclient"
	"portfolio-blog/config"
)

// Provider is an OAuth2 identity provider the owner can sign in with.
type Provider interface {
	ID() string
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	FetchUser(ctx context.Context, token *oauth2.Token) (User, error)
}

// Providers keeps the configured providers in registration order.
type Providers struct {
	order []Provider
	byID  map[string]Provider
}

func NewProviders(ps ...Provider) *Providers {
	reg := &Providers{byID: make(map[string]Provider, len(ps))}
	for _, p := range ps {
		if _, dup := reg.byID[p.ID()]; dup {
			continue
		}
		reg.order = append(reg.order, p)
		reg.byID[p.ID()] = p
	}
	return reg
}

// ProvidersFromConfig enables each provider whose client credentials are set.
// The redirect URL is <base_url>/auth/callback/<id>.
func ProvidersFromConfig(cfg config.AuthConfig) *Providers {
	var ps []Provider
	if cfg.GitHubClientID != "" && cfg.GitHubClientSecret != "" {
		ps = append(ps, NewGitHubProvider(cfg.GitHubClientID, cfg.GitHubClientSecret, CallbackURL(cfg.BaseURL, ProviderGitHub)))
	}
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		ps = append(ps, NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, CallbackURL(cfg.BaseURL, ProviderGoogle)))
	}
	return NewProviders(ps...)
}

func CallbackURL(baseURL, providerID string) string {
	return baseURL + "/auth/callback/" + providerID
}

func (p *Providers) Get(id string) (Provider, bool) {
	if p == nil {
		return nil, false
	}
	pr, ok := p.byID[id]
	return pr, ok
}

func (p *Providers) List() []Provider {
	if p == nil {
		return nil
	}
	return p.order
}

// withClient routes oauth2's token and userinfo calls through the traced client.
func withClient(ctx context.Context, client *http.Client) context.Context {
	if client == nil {
		client = httpclient.NewDefault()
	}
	return context.WithValue(ctx, oauth2.HTTPClient, client)
}

// getJSON fetches url with the token's authorized client and decodes the body into out.
func getJSON(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token, url string, out any) error {
	client := cfg.Client(ctx, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
