package auth

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"portfolio-blog/cmd/api/httpclient"
)

const (
	ProviderGoogle    = "google"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
)

type GoogleProvider struct {
	config      *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
}

type googleUserInfo struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
		httpClient:  httpclient.NewDefault(),
	}
}

func (p *GoogleProvider) ID() string   { return ProviderGoogle }
func (p *GoogleProvider) Name() string { return "Google" }

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return p.config.Exchange(withClient(ctx, p.httpClient), code)
}

func (p *GoogleProvider) FetchUser(ctx context.Context, token *oauth2.Token) (User, error) {
	var info googleUserInfo
	if err := getJSON(withClient(ctx, p.httpClient), p.config, token, p.userInfoURL, &info); err != nil {
		return User{}, fmt.Errorf("google userinfo: %w", err)
	}
	if info.Sub == "" {
		return User{}, fmt.Errorf("google userinfo: missing sub")
	}
	return User{
		ID:       info.Sub,
		Name:     info.Name,
		Email:    info.Email,
		Image:    info.Picture,
		Provider: ProviderGoogle,
	}, nil
}
