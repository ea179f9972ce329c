package auth

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"portfolio-blog/cmd/api/httpclient"
)

const (
	ProviderGitHub = "github"
	githubUserURL  = "https://api.github.com/user"
	githubEmailURL = "https://api.github.com/user/emails"
)

type GitHubProvider struct {
	config     *oauth2.Config
	userURL    string
	emailURL   string
	httpClient *http.Client
}

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

func NewGitHubProvider(clientID, clientSecret, redirectURL string) *GitHubProvider {
	return &GitHubProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
		userURL:    githubUserURL,
		emailURL:   githubEmailURL,
		httpClient: httpclient.NewDefault(),
	}
}

func (p *GitHubProvider) ID() string   { return ProviderGitHub }
func (p *GitHubProvider) Name() string { return "GitHub" }

func (p *GitHubProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

func (p *GitHubProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return p.config.Exchange(withClient(ctx, p.httpClient), code)
}

// FetchUser falls back to the primary verified address when the profile
// email is private.
func (p *GitHubProvider) FetchUser(ctx context.Context, token *oauth2.Token) (User, error) {
	ctx = withClient(ctx, p.httpClient)

	var gu githubUser
	if err := getJSON(ctx, p.config, token, p.userURL, &gu); err != nil {
		return User{}, fmt.Errorf("github user: %w", err)
	}
	if gu.ID == 0 {
		return User{}, fmt.Errorf("github user: missing id")
	}

	email := gu.Email
	if email == "" {
		var emails []githubEmail
		if err := getJSON(ctx, p.config, token, p.emailURL, &emails); err != nil {
			return User{}, fmt.Errorf("github emails: %w", err)
		}
		for _, e := range emails {
			if e.Primary && e.Verified {
				email = e.Email
				break
			}
		}
	}

	name := gu.Name
	if name == "" {
		name = gu.Login
	}
	return User{
		ID:       strconv.FormatInt(gu.ID, 10),
		Name:     name,
		Email:    email,
		Image:    gu.AvatarURL,
		Provider: ProviderGitHub,
	}, nil
}
